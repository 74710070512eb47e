package handlers

import (
	"context"

	"firewings/internal/db"
	"firewings/internal/models"
	"firewings/internal/services"
	"firewings/internal/store"
)

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, tx *db.Tx, user models.User) error
	List(ctx context.Context) ([]models.User, error)
}

type AirportStore interface {
	List(ctx context.Context) ([]models.Airport, error)
	GetByID(ctx context.Context, id string) (models.Airport, error)
	Create(ctx context.Context, tx *db.Tx, input store.AirportInput) (models.Airport, error)
	Update(ctx context.Context, tx *db.Tx, airport models.Airport) error
	Delete(ctx context.Context, tx *db.Tx, id string) error
}

type AirplaneStore interface {
	List(ctx context.Context) ([]models.Airplane, error)
	GetByID(ctx context.Context, id string) (models.Airplane, error)
	Create(ctx context.Context, tx *db.Tx, input store.AirplaneInput) (models.Airplane, error)
	Update(ctx context.Context, tx *db.Tx, airplane models.Airplane) error
	Delete(ctx context.Context, tx *db.Tx, id string) error
}

type FlightStore interface {
	List(ctx context.Context) ([]models.Flight, error)
	GetByID(ctx context.Context, id string) (models.Flight, error)
	Create(ctx context.Context, tx *db.Tx, input store.FlightInput) (models.Flight, error)
	Update(ctx context.Context, tx *db.Tx, flight models.Flight) error
	Delete(ctx context.Context, tx *db.Tx, id string) error
}

type BookingStore interface {
	GetByID(ctx context.Context, id string) (models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

type ReviewStore interface {
	Create(ctx context.Context, tx *db.Tx, review models.Review) error
	ListByFlight(ctx context.Context, flightID string) ([]models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
}

type WalletStore interface {
	Balance(ctx context.Context, userID string) (int64, error)
	CreateWallet(ctx context.Context, tx *db.Tx, userID string) error
	AdjustBalance(ctx context.Context, tx *db.Tx, userID string, delta int64) (int64, error)
	AppendTransaction(ctx context.Context, tx *db.Tx, transaction models.WalletTransaction) error
	ListTransactions(ctx context.Context, userID string) ([]models.WalletTransaction, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req services.CreateBookingRequest) (string, error)
	CancelBooking(ctx context.Context, userID, bookingID string) (int64, error)
	Rebook(ctx context.Context, req services.RebookRequest) (string, error)
	AddFunds(ctx context.Context, userID string, amountMinor int64) (int64, error)
	DeductFunds(ctx context.Context, userID string, amountMinor int64) (int64, error)
}
