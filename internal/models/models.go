package models

import "time"

// Role is the closed set of account roles. Route guards switch
// exhaustively over it.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Airport struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Airplane struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	Capacity     int    `json:"capacity"`
}

type Flight struct {
	ID                 string    `json:"id"`
	FlightNumber       string    `json:"flight_number"`
	DepartureAirportID string    `json:"departure_airport_id"`
	ArrivalAirportID   string    `json:"arrival_airport_id"`
	DepartureTime      time.Time `json:"departure_time"`
	ArrivalTime        time.Time `json:"arrival_time"`
	AirplaneID         string    `json:"airplane_id"`
	PriceMinor         int64     `json:"price"`
	AvailableSeats     int       `json:"available_seats"`
}

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	// BookingStatusPending is part of the status vocabulary but no
	// operation produces it.
	BookingStatusPending BookingStatus = "pending"
)

type Booking struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	FlightID         string        `json:"flight_id"`
	BookingDate      time.Time     `json:"booking_date"`
	PassengerCount   int           `json:"passenger_count"`
	TotalAmountMinor int64         `json:"total_amount"`
	Status           BookingStatus `json:"status"`
}

type Review struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	FlightID string    `json:"flight_id"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type WalletTransaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	AmountMinor int64           `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}
