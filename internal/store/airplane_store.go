package store

import (
	"context"

	"firewings/internal/db"
	"firewings/internal/models"

	"github.com/google/uuid"
)

type AirplaneStore struct {
	db *db.DB
}

func NewAirplaneStore(database *db.DB) *AirplaneStore {
	return &AirplaneStore{db: database}
}

func (s *AirplaneStore) List(ctx context.Context) ([]models.Airplane, error) {
	var airplanes []models.Airplane
	err := s.db.View(ctx, func(state *db.State) error {
		airplanes = append(airplanes, state.Airplanes...)
		return nil
	})
	return airplanes, err
}

func (s *AirplaneStore) GetByID(ctx context.Context, id string) (models.Airplane, error) {
	var airplane models.Airplane
	err := s.db.View(ctx, func(state *db.State) error {
		for _, a := range state.Airplanes {
			if a.ID == id {
				airplane = a
				return nil
			}
		}
		return ErrNotFound
	})
	return airplane, err
}

type AirplaneInput struct {
	Model        string
	Manufacturer string
	Capacity     int
}

func (s *AirplaneStore) Create(ctx context.Context, tx *db.Tx, input AirplaneInput) (models.Airplane, error) {
	if input.Capacity <= 0 {
		return models.Airplane{}, ErrInvalidCapacity
	}
	airplane := models.Airplane{
		ID:           uuid.NewString(),
		Model:        input.Model,
		Manufacturer: input.Manufacturer,
		Capacity:     input.Capacity,
	}
	state := tx.State()
	state.Airplanes = append(state.Airplanes, airplane)
	return airplane, nil
}

func (s *AirplaneStore) Update(ctx context.Context, tx *db.Tx, airplane models.Airplane) error {
	if airplane.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	state := tx.State()
	for i, existing := range state.Airplanes {
		if existing.ID == airplane.ID {
			state.Airplanes[i] = airplane
			return nil
		}
	}
	return ErrNotFound
}

func (s *AirplaneStore) Delete(ctx context.Context, tx *db.Tx, id string) error {
	state := tx.State()
	for _, flight := range state.Flights {
		if flight.AirplaneID == id {
			return ErrAirplaneInUse
		}
	}
	for i, airplane := range state.Airplanes {
		if airplane.ID == id {
			state.Airplanes = append(state.Airplanes[:i:i], state.Airplanes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
