package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"firewings/internal/db"
	"firewings/internal/models"
	"firewings/internal/money"
	"firewings/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrFlightNotFound          = errors.New("flight not found")
	ErrNotEnoughSeats          = errors.New("not enough seats available")
	ErrInsufficientFunds       = errors.New("insufficient funds in wallet")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrBookingNotOwned         = errors.New("booking does not belong to user")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidPassengerCount   = errors.New("invalid passenger count")
)

// 20% of the fare is forfeited as a cancellation fee.
var refundFraction = decimal.RequireFromString("0.8")

type FlightStore interface {
	GetForUpdate(ctx context.Context, tx *db.Tx, id string) (models.Flight, error)
	AdjustSeats(ctx context.Context, tx *db.Tx, id string, delta int) error
}

type BookingStore interface {
	Create(ctx context.Context, tx *db.Tx, booking models.Booking) error
	GetForUpdate(ctx context.Context, tx *db.Tx, id string) (models.Booking, error)
	SetStatus(ctx context.Context, tx *db.Tx, id string, status models.BookingStatus) error
}

type WalletStore interface {
	BalanceForUpdate(ctx context.Context, tx *db.Tx, userID string) (int64, error)
	AdjustBalance(ctx context.Context, tx *db.Tx, userID string, delta int64) (int64, error)
	AppendTransaction(ctx context.Context, tx *db.Tx, transaction models.WalletTransaction) error
}

type NotificationHub interface {
	Broadcast(userID string, notification websocket.Notification)
}

// BookingService is the booking and wallet ledger. Every operation applies
// its multi-collection update inside one transaction, so the externally
// observable effect is all-or-nothing.
type BookingService struct {
	txRunner db.TxRunner
	flights  FlightStore
	bookings BookingStore
	wallet   WalletStore
	hub      NotificationHub
}

func NewBookingService(txRunner db.TxRunner, flights FlightStore, bookings BookingStore, wallet WalletStore, hub NotificationHub) *BookingService {
	return &BookingService{
		txRunner: txRunner,
		flights:  flights,
		bookings: bookings,
		wallet:   wallet,
		hub:      hub,
	}
}

type CreateBookingRequest struct {
	UserID         string
	FlightID       string
	PassengerCount int
}

type bookingResult struct {
	bookingID    string
	flightNumber string
	fare         int64
	balanceAfter int64
}

func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (string, error) {
	if req.PassengerCount < 1 {
		return "", ErrInvalidPassengerCount
	}
	var result bookingResult
	err := s.txRunner.WithTx(ctx, func(tx *db.Tx) error {
		var err error
		result, err = s.createInTx(ctx, tx, req)
		return err
	})
	if err != nil {
		return "", err
	}
	s.hub.Broadcast(req.UserID, websocket.Notification{
		Kind:    "booking_confirmed",
		Message: fmt.Sprintf("Flight %s booked successfully", result.flightNumber),
		Balance: money.FormatMinor(result.balanceAfter),
	})
	return result.bookingID, nil
}

// createInTx checks the preconditions in order (flight exists, seats,
// funds) and applies the four paired state changes: balance debit,
// transaction row, booking row, seat decrement.
func (s *BookingService) createInTx(ctx context.Context, tx *db.Tx, req CreateBookingRequest) (bookingResult, error) {
	flight, err := s.flights.GetForUpdate(ctx, tx, req.FlightID)
	if err != nil {
		return bookingResult{}, ErrFlightNotFound
	}
	if flight.AvailableSeats < req.PassengerCount {
		return bookingResult{}, ErrNotEnoughSeats
	}
	fare := flight.PriceMinor * int64(req.PassengerCount)
	balance, err := s.wallet.BalanceForUpdate(ctx, tx, req.UserID)
	if err != nil {
		return bookingResult{}, err
	}
	if balance < fare {
		return bookingResult{}, ErrInsufficientFunds
	}
	balanceAfter, err := s.wallet.AdjustBalance(ctx, tx, req.UserID, -fare)
	if err != nil {
		return bookingResult{}, err
	}
	now := time.Now()
	if err := s.wallet.AppendTransaction(ctx, tx, models.WalletTransaction{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		AmountMinor: fare,
		Type:        models.TransactionDebit,
		Description: fmt.Sprintf("Booking for Flight %s", flight.FlightNumber),
		Date:        now,
	}); err != nil {
		return bookingResult{}, err
	}
	bookingID := uuid.NewString()
	if err := s.bookings.Create(ctx, tx, models.Booking{
		ID:               bookingID,
		UserID:           req.UserID,
		FlightID:         req.FlightID,
		BookingDate:      now,
		PassengerCount:   req.PassengerCount,
		TotalAmountMinor: fare,
		Status:           models.BookingStatusConfirmed,
	}); err != nil {
		return bookingResult{}, err
	}
	if err := s.flights.AdjustSeats(ctx, tx, req.FlightID, -req.PassengerCount); err != nil {
		return bookingResult{}, err
	}
	return bookingResult{
		bookingID:    bookingID,
		flightNumber: flight.FlightNumber,
		fare:         fare,
		balanceAfter: balanceAfter,
	}, nil
}

type cancelResult struct {
	refund       int64
	balanceAfter int64
	booking      models.Booking
}

func (s *BookingService) CancelBooking(ctx context.Context, userID, bookingID string) (int64, error) {
	var result cancelResult
	err := s.txRunner.WithTx(ctx, func(tx *db.Tx) error {
		var err error
		result, err = s.cancelInTx(ctx, tx, userID, bookingID)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.hub.Broadcast(userID, websocket.Notification{
		Kind:    "booking_cancelled",
		Message: fmt.Sprintf("Booking cancelled successfully. %s refunded to wallet.", money.FormatMinor(result.refund)),
		Balance: money.FormatMinor(result.balanceAfter),
	})
	return result.refund, nil
}

// cancelInTx flips the booking to cancelled, credits the 80% refund, and
// restores the seats. The flight-deletion guard keeps the flight row
// present for every non-cancelled booking, so a missing flight here is an
// internal inconsistency rather than a skippable step.
func (s *BookingService) cancelInTx(ctx context.Context, tx *db.Tx, userID, bookingID string) (cancelResult, error) {
	booking, err := s.bookings.GetForUpdate(ctx, tx, bookingID)
	if err != nil {
		return cancelResult{}, ErrBookingNotFound
	}
	if booking.UserID != userID {
		return cancelResult{}, ErrBookingNotOwned
	}
	if booking.Status == models.BookingStatusCancelled {
		return cancelResult{}, ErrBookingAlreadyCancelled
	}
	if err := s.bookings.SetStatus(ctx, tx, bookingID, models.BookingStatusCancelled); err != nil {
		return cancelResult{}, err
	}
	refund := money.Fraction(booking.TotalAmountMinor, refundFraction)
	balanceAfter, err := s.wallet.AdjustBalance(ctx, tx, userID, refund)
	if err != nil {
		return cancelResult{}, err
	}
	if err := s.wallet.AppendTransaction(ctx, tx, models.WalletTransaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		AmountMinor: refund,
		Type:        models.TransactionCredit,
		Description: "Refund for cancelled booking (80%)",
		Date:        time.Now(),
	}); err != nil {
		return cancelResult{}, err
	}
	if err := s.flights.AdjustSeats(ctx, tx, booking.FlightID, booking.PassengerCount); err != nil {
		return cancelResult{}, fmt.Errorf("restock seats for flight %s: %w", booking.FlightID, err)
	}
	return cancelResult{refund: refund, balanceAfter: balanceAfter, booking: booking}, nil
}

type RebookRequest struct {
	UserID      string
	BookingID   string
	NewFlightID string
}

// Rebook cancels the old booking and books the new flight in one
// transaction: the 80% refund and the new full fare both apply, but a
// replacement that fails its preconditions rolls the cancellation back.
func (s *BookingService) Rebook(ctx context.Context, req RebookRequest) (string, error) {
	var cancelled cancelResult
	var created bookingResult
	err := s.txRunner.WithTx(ctx, func(tx *db.Tx) error {
		var err error
		cancelled, err = s.cancelInTx(ctx, tx, req.UserID, req.BookingID)
		if err != nil {
			return err
		}
		created, err = s.createInTx(ctx, tx, CreateBookingRequest{
			UserID:         req.UserID,
			FlightID:       req.NewFlightID,
			PassengerCount: cancelled.booking.PassengerCount,
		})
		return err
	})
	if err != nil {
		return "", err
	}
	s.hub.Broadcast(req.UserID, websocket.Notification{
		Kind:    "booking_rebooked",
		Message: fmt.Sprintf("Rebooked onto Flight %s", created.flightNumber),
		Balance: money.FormatMinor(created.balanceAfter),
	})
	return created.bookingID, nil
}

func (s *BookingService) AddFunds(ctx context.Context, userID string, amountMinor int64) (int64, error) {
	if amountMinor <= 0 {
		return 0, ErrInvalidAmount
	}
	var balanceAfter int64
	err := s.txRunner.WithTx(ctx, func(tx *db.Tx) error {
		var err error
		balanceAfter, err = s.wallet.AdjustBalance(ctx, tx, userID, amountMinor)
		if err != nil {
			return err
		}
		return s.wallet.AppendTransaction(ctx, tx, models.WalletTransaction{
			ID:          uuid.NewString(),
			UserID:      userID,
			AmountMinor: amountMinor,
			Type:        models.TransactionCredit,
			Description: "Funds added to wallet",
			Date:        time.Now(),
		})
	})
	if err != nil {
		return 0, err
	}
	s.hub.Broadcast(userID, websocket.Notification{
		Kind:    "wallet_credit",
		Message: fmt.Sprintf("%s added to wallet successfully", money.FormatMinor(amountMinor)),
		Balance: money.FormatMinor(balanceAfter),
	})
	return balanceAfter, nil
}

func (s *BookingService) DeductFunds(ctx context.Context, userID string, amountMinor int64) (int64, error) {
	if amountMinor <= 0 {
		return 0, ErrInvalidAmount
	}
	var balanceAfter int64
	err := s.txRunner.WithTx(ctx, func(tx *db.Tx) error {
		balance, err := s.wallet.BalanceForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}
		if balance < amountMinor {
			return ErrInsufficientFunds
		}
		balanceAfter, err = s.wallet.AdjustBalance(ctx, tx, userID, -amountMinor)
		if err != nil {
			return err
		}
		return s.wallet.AppendTransaction(ctx, tx, models.WalletTransaction{
			ID:          uuid.NewString(),
			UserID:      userID,
			AmountMinor: amountMinor,
			Type:        models.TransactionDebit,
			Description: "Funds deducted from wallet",
			Date:        time.Now(),
		})
	})
	if err != nil {
		return 0, err
	}
	s.hub.Broadcast(userID, websocket.Notification{
		Kind:    "wallet_debit",
		Message: fmt.Sprintf("%s deducted from wallet", money.FormatMinor(amountMinor)),
		Balance: money.FormatMinor(balanceAfter),
	})
	return balanceAfter, nil
}
