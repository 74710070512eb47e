package store

import (
	"context"
	"errors"
	"testing"

	"firewings/internal/db"
	"firewings/internal/models"
)

func TestWalletCreateIsIdempotent(t *testing.T) {
	database := db.Open(db.State{Balances: map[string]int64{"user@gmail.com": 500000}})
	wallet := NewWalletStore(database)
	ctx := context.Background()

	err := database.WithTx(ctx, func(tx *db.Tx) error {
		if err := wallet.CreateWallet(ctx, tx, "new@gmail.com"); err != nil {
			return err
		}
		return wallet.CreateWallet(ctx, tx, "user@gmail.com")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	balance, err := wallet.Balance(ctx, "new@gmail.com")
	if err != nil || balance != 0 {
		t.Fatalf("expected zero balance for new wallet, got %d (%v)", balance, err)
	}
	balance, _ = wallet.Balance(ctx, "user@gmail.com")
	if balance != 500000 {
		t.Fatalf("existing wallet overwritten: %d", balance)
	}
}

func TestWalletAdjustBalanceMissingWallet(t *testing.T) {
	database := db.Open(db.State{})
	wallet := NewWalletStore(database)

	err := database.WithTx(context.Background(), func(tx *db.Tx) error {
		_, err := wallet.AdjustBalance(context.Background(), tx, "ghost@gmail.com", 100)
		return err
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWalletListTransactionsFiltersByUser(t *testing.T) {
	database := db.Open(db.State{
		Transactions: []models.WalletTransaction{
			{ID: "1", UserID: "a@gmail.com", AmountMinor: 100, Type: models.TransactionCredit},
			{ID: "2", UserID: "b@gmail.com", AmountMinor: 200, Type: models.TransactionCredit},
			{ID: "3", UserID: "a@gmail.com", AmountMinor: 50, Type: models.TransactionDebit},
		},
	})
	wallet := NewWalletStore(database)

	transactions, err := wallet.ListTransactions(context.Background(), "a@gmail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions) != 2 || transactions[0].ID != "1" || transactions[1].ID != "3" {
		t.Fatalf("unexpected transactions: %#v", transactions)
	}
}

func TestSeedReconciles(t *testing.T) {
	state, err := Seed(1000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Each seeded balance must equal credits minus debits for that user.
	totals := make(map[string]int64)
	for _, transaction := range state.Transactions {
		switch transaction.Type {
		case models.TransactionCredit:
			totals[transaction.UserID] += transaction.AmountMinor
		case models.TransactionDebit:
			totals[transaction.UserID] -= transaction.AmountMinor
		}
	}
	for userID, balance := range state.Balances {
		if totals[userID] != balance {
			t.Fatalf("user %s: transactions sum to %d, balance is %d", userID, totals[userID], balance)
		}
	}
	for _, booking := range state.Bookings {
		found := false
		for _, flight := range state.Flights {
			if flight.ID == booking.FlightID {
				found = true
			}
		}
		if !found {
			t.Fatalf("booking %s references missing flight %s", booking.ID, booking.FlightID)
		}
	}
}
