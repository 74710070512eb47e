package db

import (
	"context"
	"sync"

	"firewings/internal/models"
)

// State holds every collection the application mutates. The entire dataset
// lives in process memory and resets to its seed on restart.
type State struct {
	Users        []models.User
	Airports     []models.Airport
	Airplanes    []models.Airplane
	Flights      []models.Flight
	Bookings     []models.Booking
	Reviews      []models.Review
	Balances     map[string]int64
	Transactions []models.WalletTransaction
}

func (s *State) clone() *State {
	next := &State{
		Users:        append([]models.User(nil), s.Users...),
		Airports:     append([]models.Airport(nil), s.Airports...),
		Airplanes:    append([]models.Airplane(nil), s.Airplanes...),
		Flights:      append([]models.Flight(nil), s.Flights...),
		Bookings:     append([]models.Booking(nil), s.Bookings...),
		Reviews:      append([]models.Review(nil), s.Reviews...),
		Balances:     make(map[string]int64, len(s.Balances)),
		Transactions: append([]models.WalletTransaction(nil), s.Transactions...),
	}
	for userID, balance := range s.Balances {
		next.Balances[userID] = balance
	}
	return next
}

// TxRunner runs a closure against a private copy of the state and commits
// it only when the closure succeeds.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *Tx) error) error
}

// Tx is a mutable working copy of the state. Mutations become visible only
// when the enclosing WithTx commits.
type Tx struct {
	state *State
}

func (t *Tx) State() *State {
	return t.state
}

type DB struct {
	mu    sync.RWMutex
	state *State
}

func Open(seed State) *DB {
	state := seed.clone()
	return &DB{state: state}
}

// View runs fn against the committed state under a read lock. fn must not
// mutate or retain what it is given; copy anything that escapes.
func (d *DB) View(ctx context.Context, fn func(s *State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return fn(d.state)
}

// WithTx clones the committed state, applies fn to the clone, and swaps the
// clone in on success. Any error from fn discards every mutation, so a
// multi-collection update can never be half applied.
func (d *DB) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	tx := &Tx{state: d.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	d.state = tx.state
	return nil
}
