package store

import (
	"context"

	"firewings/internal/db"
	"firewings/internal/models"
)

// WalletStore keeps one balance per user; every balance mutation is paired
// with exactly one appended transaction by the callers.
type WalletStore struct {
	db *db.DB
}

func NewWalletStore(database *db.DB) *WalletStore {
	return &WalletStore{db: database}
}

func (s *WalletStore) Balance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := s.db.View(ctx, func(state *db.State) error {
		stored, ok := state.Balances[userID]
		if !ok {
			return ErrNotFound
		}
		balance = stored
		return nil
	})
	return balance, err
}

func (s *WalletStore) BalanceForUpdate(ctx context.Context, tx *db.Tx, userID string) (int64, error) {
	balance, ok := tx.State().Balances[userID]
	if !ok {
		return 0, ErrNotFound
	}
	return balance, nil
}

// CreateWallet opens a zero wallet for a new user. Opening funds are
// credited separately so the transaction log reconciles from zero.
func (s *WalletStore) CreateWallet(ctx context.Context, tx *db.Tx, userID string) error {
	state := tx.State()
	if _, ok := state.Balances[userID]; ok {
		return nil
	}
	state.Balances[userID] = 0
	return nil
}

func (s *WalletStore) AdjustBalance(ctx context.Context, tx *db.Tx, userID string, delta int64) (int64, error) {
	state := tx.State()
	balance, ok := state.Balances[userID]
	if !ok {
		return 0, ErrNotFound
	}
	balance += delta
	state.Balances[userID] = balance
	return balance, nil
}

func (s *WalletStore) AppendTransaction(ctx context.Context, tx *db.Tx, transaction models.WalletTransaction) error {
	state := tx.State()
	state.Transactions = append(state.Transactions, transaction)
	return nil
}

func (s *WalletStore) ListTransactions(ctx context.Context, userID string) ([]models.WalletTransaction, error) {
	var transactions []models.WalletTransaction
	err := s.db.View(ctx, func(state *db.State) error {
		for _, transaction := range state.Transactions {
			if transaction.UserID == userID {
				transactions = append(transactions, transaction)
			}
		}
		return nil
	})
	return transactions, err
}
