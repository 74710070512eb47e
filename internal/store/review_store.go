package store

import (
	"context"

	"firewings/internal/db"
	"firewings/internal/models"
)

type ReviewStore struct {
	db *db.DB
}

func NewReviewStore(database *db.DB) *ReviewStore {
	return &ReviewStore{db: database}
}

func (s *ReviewStore) Create(ctx context.Context, tx *db.Tx, review models.Review) error {
	state := tx.State()
	state.Reviews = append(state.Reviews, review)
	return nil
}

func (s *ReviewStore) ListByFlight(ctx context.Context, flightID string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.View(ctx, func(state *db.State) error {
		for _, review := range state.Reviews {
			if review.FlightID == flightID {
				reviews = append(reviews, review)
			}
		}
		return nil
	})
	return reviews, err
}

func (s *ReviewStore) ListAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.View(ctx, func(state *db.State) error {
		reviews = append(reviews, state.Reviews...)
		return nil
	})
	return reviews, err
}
