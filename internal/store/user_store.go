package store

import (
	"context"
	"strings"

	"firewings/internal/db"
	"firewings/internal/models"
)

type UserStore struct {
	db *db.DB
}

func NewUserStore(database *db.DB) *UserStore {
	return &UserStore{db: database}
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.View(ctx, func(state *db.State) error {
		for _, u := range state.Users {
			if strings.EqualFold(u.Email, email) {
				user = u
				return nil
			}
		}
		return ErrNotFound
	})
	return user, err
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.View(ctx, func(state *db.State) error {
		users = append(users, state.Users...)
		return nil
	})
	return users, err
}

func (s *UserStore) Create(ctx context.Context, tx *db.Tx, user models.User) error {
	state := tx.State()
	for _, existing := range state.Users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}
	state.Users = append(state.Users, user)
	return nil
}
