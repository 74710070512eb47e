package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"firewings/internal/db"
	"firewings/internal/models"
)

func flightState() db.State {
	return db.State{
		Airports: []models.Airport{
			{ID: "1", Code: "DEL"},
			{ID: "2", Code: "BOM"},
		},
		Airplanes: []models.Airplane{
			{ID: "a1", Model: "A320neo", Manufacturer: "Airbus", Capacity: 180},
		},
	}
}

func validFlightInput() FlightInput {
	departure := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	return FlightInput{
		FlightNumber:       "FW101",
		DepartureAirportID: "1",
		ArrivalAirportID:   "2",
		DepartureTime:      departure,
		ArrivalTime:        departure.Add(2 * time.Hour),
		AirplaneID:         "a1",
		PriceMinor:         500000,
		AvailableSeats:     180,
	}
}

func createFlight(t *testing.T, database *db.DB, flights *FlightStore, input FlightInput) (models.Flight, error) {
	t.Helper()
	var flight models.Flight
	err := database.WithTx(context.Background(), func(tx *db.Tx) error {
		var err error
		flight, err = flights.Create(context.Background(), tx, input)
		return err
	})
	return flight, err
}

func TestFlightCreateValid(t *testing.T) {
	database := db.Open(flightState())
	flights := NewFlightStore(database)

	flight, err := createFlight(t, database, flights, validFlightInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, err := flights.GetByID(context.Background(), flight.ID)
	if err != nil {
		t.Fatalf("created flight not stored: %v", err)
	}
	if stored.FlightNumber != "FW101" || stored.AvailableSeats != 180 {
		t.Fatalf("unexpected flight: %#v", stored)
	}
}

func TestFlightCreateValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*FlightInput)
		wantErr error
	}{
		{"same airport", func(in *FlightInput) { in.ArrivalAirportID = in.DepartureAirportID }, ErrSameAirport},
		{"arrival before departure", func(in *FlightInput) { in.ArrivalTime = in.DepartureTime.Add(-time.Hour) }, ErrInvalidSchedule},
		{"zero price", func(in *FlightInput) { in.PriceMinor = 0 }, ErrInvalidPrice},
		{"negative price", func(in *FlightInput) { in.PriceMinor = -100 }, ErrInvalidPrice},
		{"missing departure airport", func(in *FlightInput) { in.DepartureAirportID = "missing" }, ErrNotFound},
		{"missing arrival airport", func(in *FlightInput) { in.ArrivalAirportID = "missing" }, ErrNotFound},
		{"missing airplane", func(in *FlightInput) { in.AirplaneID = "missing" }, ErrNotFound},
		{"negative seats", func(in *FlightInput) { in.AvailableSeats = -1 }, ErrSeatsOutOfRange},
		{"seats above capacity", func(in *FlightInput) { in.AvailableSeats = 181 }, ErrSeatsOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			database := db.Open(flightState())
			flights := NewFlightStore(database)
			input := validFlightInput()
			tc.mutate(&input)
			_, err := createFlight(t, database, flights, input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestFlightDeleteWithActiveBooking(t *testing.T) {
	state := flightState()
	state.Flights = []models.Flight{{ID: "f1", FlightNumber: "FW101", DepartureAirportID: "1", ArrivalAirportID: "2", AirplaneID: "a1"}}
	state.Bookings = []models.Booking{{ID: "b1", UserID: "user@gmail.com", FlightID: "f1", Status: models.BookingStatusConfirmed}}
	database := db.Open(state)
	flights := NewFlightStore(database)

	err := database.WithTx(context.Background(), func(tx *db.Tx) error {
		return flights.Delete(context.Background(), tx, "f1")
	})
	if !errors.Is(err, ErrFlightHasBookings) {
		t.Fatalf("expected ErrFlightHasBookings, got %v", err)
	}
}

func TestFlightDeleteWithOnlyCancelledBookings(t *testing.T) {
	state := flightState()
	state.Flights = []models.Flight{{ID: "f1", FlightNumber: "FW101", DepartureAirportID: "1", ArrivalAirportID: "2", AirplaneID: "a1"}}
	state.Bookings = []models.Booking{{ID: "b1", UserID: "user@gmail.com", FlightID: "f1", Status: models.BookingStatusCancelled}}
	database := db.Open(state)
	flights := NewFlightStore(database)
	ctx := context.Background()

	err := database.WithTx(ctx, func(tx *db.Tx) error {
		return flights.Delete(ctx, tx, "f1")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := flights.GetByID(ctx, "f1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFlightAdjustSeats(t *testing.T) {
	state := flightState()
	state.Flights = []models.Flight{{ID: "f1", AvailableSeats: 10}}
	database := db.Open(state)
	flights := NewFlightStore(database)
	ctx := context.Background()

	err := database.WithTx(ctx, func(tx *db.Tx) error {
		return flights.AdjustSeats(ctx, tx, "f1", -3)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flight, _ := flights.GetByID(ctx, "f1")
	if flight.AvailableSeats != 7 {
		t.Fatalf("expected 7 seats, got %d", flight.AvailableSeats)
	}
}
