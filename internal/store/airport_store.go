package store

import (
	"context"
	"strings"

	"firewings/internal/db"
	"firewings/internal/models"

	"github.com/google/uuid"
)

type AirportStore struct {
	db *db.DB
}

func NewAirportStore(database *db.DB) *AirportStore {
	return &AirportStore{db: database}
}

func (s *AirportStore) List(ctx context.Context) ([]models.Airport, error) {
	var airports []models.Airport
	err := s.db.View(ctx, func(state *db.State) error {
		airports = append(airports, state.Airports...)
		return nil
	})
	return airports, err
}

func (s *AirportStore) GetByID(ctx context.Context, id string) (models.Airport, error) {
	var airport models.Airport
	err := s.db.View(ctx, func(state *db.State) error {
		for _, a := range state.Airports {
			if a.ID == id {
				airport = a
				return nil
			}
		}
		return ErrNotFound
	})
	return airport, err
}

type AirportInput struct {
	Name    string
	Code    string
	City    string
	Country string
}

func (s *AirportStore) Create(ctx context.Context, tx *db.Tx, input AirportInput) (models.Airport, error) {
	state := tx.State()
	if codeTaken(state.Airports, input.Code, "") {
		return models.Airport{}, ErrDuplicateCode
	}
	airport := models.Airport{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Code:    strings.ToUpper(input.Code),
		City:    input.City,
		Country: input.Country,
	}
	state.Airports = append(state.Airports, airport)
	return airport, nil
}

func (s *AirportStore) Update(ctx context.Context, tx *db.Tx, airport models.Airport) error {
	state := tx.State()
	if codeTaken(state.Airports, airport.Code, airport.ID) {
		return ErrDuplicateCode
	}
	airport.Code = strings.ToUpper(airport.Code)
	for i, existing := range state.Airports {
		if existing.ID == airport.ID {
			state.Airports[i] = airport
			return nil
		}
	}
	return ErrNotFound
}

func (s *AirportStore) Delete(ctx context.Context, tx *db.Tx, id string) error {
	state := tx.State()
	for _, flight := range state.Flights {
		if flight.DepartureAirportID == id || flight.ArrivalAirportID == id {
			return ErrAirportInUse
		}
	}
	for i, airport := range state.Airports {
		if airport.ID == id {
			state.Airports = append(state.Airports[:i:i], state.Airports[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Codes are unique case-insensitively; "del" collides with "DEL".
func codeTaken(airports []models.Airport, code, excludeID string) bool {
	for _, airport := range airports {
		if airport.ID == excludeID {
			continue
		}
		if strings.EqualFold(airport.Code, code) {
			return true
		}
	}
	return false
}
