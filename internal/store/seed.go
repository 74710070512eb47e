package store

import (
	"time"

	"firewings/internal/auth"
	"firewings/internal/db"
	"firewings/internal/models"
)

// Seed builds the demo dataset: two fixed credential accounts, four
// airports, three airplanes, three flights, and one pre-existing booking
// with its wallet history. Sums of credits minus debits reconcile with
// each seeded balance.
func Seed(openingBalanceMinor int64) (db.State, error) {
	adminHash, err := auth.HashPassword("admin123")
	if err != nil {
		return db.State{}, err
	}
	userHash, err := auth.HashPassword("user123")
	if err != nil {
		return db.State{}, err
	}

	seededAt := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)

	return db.State{
		Users: []models.User{
			{Email: "admin@gmail.com", Name: "Admin User", PasswordHash: adminHash, Role: models.RoleAdmin, CreatedAt: seededAt},
			{Email: "user@gmail.com", Name: "Regular User", PasswordHash: userHash, Role: models.RoleUser, CreatedAt: seededAt},
		},
		Airports: []models.Airport{
			{ID: "1", Name: "Indira Gandhi International Airport", Code: "DEL", City: "New Delhi", Country: "India"},
			{ID: "2", Name: "Chhatrapati Shivaji Maharaj International Airport", Code: "BOM", City: "Mumbai", Country: "India"},
			{ID: "3", Name: "Chennai International Airport", Code: "MAA", City: "Chennai", Country: "India"},
			{ID: "4", Name: "Kempegowda International Airport", Code: "BLR", City: "Bangalore", Country: "India"},
		},
		Airplanes: []models.Airplane{
			{ID: "1", Model: "Boeing 737", Capacity: 180, Manufacturer: "Boeing"},
			{ID: "2", Model: "Airbus A320", Capacity: 150, Manufacturer: "Airbus"},
			{ID: "3", Model: "Boeing 787 Dreamliner", Capacity: 250, Manufacturer: "Boeing"},
		},
		Flights: []models.Flight{
			{
				ID:                 "1",
				FlightNumber:       "FW101",
				DepartureAirportID: "1",
				ArrivalAirportID:   "2",
				DepartureTime:      time.Date(2025, time.May, 10, 8, 0, 0, 0, time.UTC),
				ArrivalTime:        time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC),
				AirplaneID:         "1",
				PriceMinor:         500000,
				AvailableSeats:     150,
			},
			{
				ID:                 "2",
				FlightNumber:       "FW102",
				DepartureAirportID: "2",
				ArrivalAirportID:   "3",
				DepartureTime:      time.Date(2025, time.May, 12, 9, 30, 0, 0, time.UTC),
				ArrivalTime:        time.Date(2025, time.May, 12, 11, 30, 0, 0, time.UTC),
				AirplaneID:         "2",
				PriceMinor:         450000,
				AvailableSeats:     120,
			},
			{
				ID:                 "3",
				FlightNumber:       "FW103",
				DepartureAirportID: "1",
				ArrivalAirportID:   "4",
				DepartureTime:      time.Date(2025, time.May, 15, 14, 0, 0, 0, time.UTC),
				ArrivalTime:        time.Date(2025, time.May, 15, 16, 30, 0, 0, time.UTC),
				AirplaneID:         "3",
				PriceMinor:         600000,
				AvailableSeats:     200,
			},
		},
		Bookings: []models.Booking{
			{
				ID:               "1",
				UserID:           "user@gmail.com",
				FlightID:         "1",
				BookingDate:      time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC),
				PassengerCount:   2,
				TotalAmountMinor: 1000000,
				Status:           models.BookingStatusConfirmed,
			},
		},
		Reviews: []models.Review{
			{
				ID:       "1",
				UserID:   "user@gmail.com",
				UserName: "Regular User",
				FlightID: "1",
				Rating:   4,
				Comment:  "Great service and on-time departure!",
				Date:     time.Date(2025, time.April, 2, 15, 30, 0, 0, time.UTC),
			},
		},
		Balances: map[string]int64{
			"admin@gmail.com": openingBalanceMinor,
			"user@gmail.com":  1000000,
		},
		Transactions: []models.WalletTransaction{
			{
				ID:          "1",
				UserID:      "admin@gmail.com",
				AmountMinor: openingBalanceMinor,
				Type:        models.TransactionCredit,
				Description: "Initial deposit",
				Date:        seededAt,
			},
			{
				ID:          "2",
				UserID:      "user@gmail.com",
				AmountMinor: 2000000,
				Type:        models.TransactionCredit,
				Description: "Initial deposit",
				Date:        seededAt,
			},
			{
				ID:          "3",
				UserID:      "user@gmail.com",
				AmountMinor: 1000000,
				Type:        models.TransactionDebit,
				Description: "Booking for Flight FW101",
				Date:        time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}, nil
}
