package store

import (
	"context"
	"fmt"
	"time"

	"firewings/internal/db"
	"firewings/internal/models"

	"github.com/google/uuid"
)

type FlightStore struct {
	db *db.DB
}

func NewFlightStore(database *db.DB) *FlightStore {
	return &FlightStore{db: database}
}

func (s *FlightStore) List(ctx context.Context) ([]models.Flight, error) {
	var flights []models.Flight
	err := s.db.View(ctx, func(state *db.State) error {
		flights = append(flights, state.Flights...)
		return nil
	})
	return flights, err
}

func (s *FlightStore) GetByID(ctx context.Context, id string) (models.Flight, error) {
	var flight models.Flight
	err := s.db.View(ctx, func(state *db.State) error {
		for _, f := range state.Flights {
			if f.ID == id {
				flight = f
				return nil
			}
		}
		return ErrNotFound
	})
	return flight, err
}

func (s *FlightStore) GetForUpdate(ctx context.Context, tx *db.Tx, id string) (models.Flight, error) {
	for _, flight := range tx.State().Flights {
		if flight.ID == id {
			return flight, nil
		}
	}
	return models.Flight{}, ErrNotFound
}

type FlightInput struct {
	FlightNumber       string
	DepartureAirportID string
	ArrivalAirportID   string
	DepartureTime      time.Time
	ArrivalTime        time.Time
	AirplaneID         string
	PriceMinor         int64
	AvailableSeats     int
}

func (s *FlightStore) Create(ctx context.Context, tx *db.Tx, input FlightInput) (models.Flight, error) {
	state := tx.State()
	if input.DepartureAirportID == input.ArrivalAirportID {
		return models.Flight{}, ErrSameAirport
	}
	if !input.ArrivalTime.After(input.DepartureTime) {
		return models.Flight{}, ErrInvalidSchedule
	}
	if input.PriceMinor <= 0 {
		return models.Flight{}, ErrInvalidPrice
	}
	if !airportExists(state, input.DepartureAirportID) {
		return models.Flight{}, fmt.Errorf("departure airport: %w", ErrNotFound)
	}
	if !airportExists(state, input.ArrivalAirportID) {
		return models.Flight{}, fmt.Errorf("arrival airport: %w", ErrNotFound)
	}
	airplane, ok := airplaneByID(state, input.AirplaneID)
	if !ok {
		return models.Flight{}, fmt.Errorf("airplane: %w", ErrNotFound)
	}
	// Capacity is only a bound at creation; later airplane edits are not
	// re-checked against existing flights.
	if input.AvailableSeats < 0 || input.AvailableSeats > airplane.Capacity {
		return models.Flight{}, ErrSeatsOutOfRange
	}
	flight := models.Flight{
		ID:                 uuid.NewString(),
		FlightNumber:       input.FlightNumber,
		DepartureAirportID: input.DepartureAirportID,
		ArrivalAirportID:   input.ArrivalAirportID,
		DepartureTime:      input.DepartureTime,
		ArrivalTime:        input.ArrivalTime,
		AirplaneID:         input.AirplaneID,
		PriceMinor:         input.PriceMinor,
		AvailableSeats:     input.AvailableSeats,
	}
	state.Flights = append(state.Flights, flight)
	return flight, nil
}

func (s *FlightStore) Update(ctx context.Context, tx *db.Tx, flight models.Flight) error {
	state := tx.State()
	for i, existing := range state.Flights {
		if existing.ID == flight.ID {
			state.Flights[i] = flight
			return nil
		}
	}
	return ErrNotFound
}

func (s *FlightStore) Delete(ctx context.Context, tx *db.Tx, id string) error {
	state := tx.State()
	for _, booking := range state.Bookings {
		if booking.FlightID == id && booking.Status != models.BookingStatusCancelled {
			return ErrFlightHasBookings
		}
	}
	for i, flight := range state.Flights {
		if flight.ID == id {
			state.Flights = append(state.Flights[:i:i], state.Flights[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AdjustSeats changes a flight's available seat count by delta (negative
// when booking, positive when cancelling).
func (s *FlightStore) AdjustSeats(ctx context.Context, tx *db.Tx, id string, delta int) error {
	state := tx.State()
	for i, flight := range state.Flights {
		if flight.ID == id {
			state.Flights[i].AvailableSeats += delta
			return nil
		}
	}
	return ErrNotFound
}

func airportExists(state *db.State, id string) bool {
	for _, airport := range state.Airports {
		if airport.ID == id {
			return true
		}
	}
	return false
}

func airplaneByID(state *db.State, id string) (models.Airplane, bool) {
	for _, airplane := range state.Airplanes {
		if airplane.ID == id {
			return airplane, true
		}
	}
	return models.Airplane{}, false
}
