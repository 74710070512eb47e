package store

import (
	"context"

	"firewings/internal/db"
	"firewings/internal/models"
)

type BookingStore struct {
	db *db.DB
}

func NewBookingStore(database *db.DB) *BookingStore {
	return &BookingStore{db: database}
}

func (s *BookingStore) GetByID(ctx context.Context, id string) (models.Booking, error) {
	var booking models.Booking
	err := s.db.View(ctx, func(state *db.State) error {
		for _, b := range state.Bookings {
			if b.ID == id {
				booking = b
				return nil
			}
		}
		return ErrNotFound
	})
	return booking, err
}

func (s *BookingStore) GetForUpdate(ctx context.Context, tx *db.Tx, id string) (models.Booking, error) {
	for _, booking := range tx.State().Bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return models.Booking{}, ErrNotFound
}

func (s *BookingStore) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.View(ctx, func(state *db.State) error {
		for _, booking := range state.Bookings {
			if booking.UserID == userID {
				bookings = append(bookings, booking)
			}
		}
		return nil
	})
	return bookings, err
}

func (s *BookingStore) ListAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.View(ctx, func(state *db.State) error {
		bookings = append(bookings, state.Bookings...)
		return nil
	})
	return bookings, err
}

func (s *BookingStore) Create(ctx context.Context, tx *db.Tx, booking models.Booking) error {
	state := tx.State()
	state.Bookings = append(state.Bookings, booking)
	return nil
}

func (s *BookingStore) SetStatus(ctx context.Context, tx *db.Tx, id string, status models.BookingStatus) error {
	state := tx.State()
	for i, booking := range state.Bookings {
		if booking.ID == id {
			state.Bookings[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}
