package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"firewings/internal/middleware"
	"firewings/internal/models"
	"firewings/internal/money"
	"firewings/internal/services"

	"github.com/go-chi/chi/v5"
)

// The booking form caps a single booking at ten passengers.
const maxPassengersPerBooking = 10

type createBookingRequest struct {
	FlightID       string `json:"flight_id"`
	PassengerCount int    `json:"passenger_count"`
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.PassengerCount < 1 || req.PassengerCount > maxPassengersPerBooking {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("passenger count must be between 1 and %d", maxPassengersPerBooking))
		return
	}
	bookingID, err := h.service.CreateBooking(r.Context(), services.CreateBookingRequest{
		UserID:         claims.Email,
		FlightID:       req.FlightID,
		PassengerCount: req.PassengerCount,
	})
	if err != nil {
		respondError(w, bookingErrorStatus(err), err.Error())
		return
	}
	booking, err := h.bookings.GetByID(r.Context(), bookingID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load booking")
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

func (h *Handler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	bookings, err := h.bookings.ListByUser(r.Context(), claims.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load bookings")
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.ownedBooking(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	refund, err := h.service.CancelBooking(r.Context(), claims.Email, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, bookingErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Booking cancelled successfully. %s refunded to wallet.", money.FormatMinor(refund)),
		"refund":  money.FormatMinor(refund),
	})
}

type rebookRequest struct {
	FlightID string `json:"flight_id"`
}

func (h *Handler) RebookFlight(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req rebookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	bookingID, err := h.service.Rebook(r.Context(), services.RebookRequest{
		UserID:      claims.Email,
		BookingID:   chi.URLParam(r, "id"),
		NewFlightID: req.FlightID,
	})
	if err != nil {
		respondError(w, bookingErrorStatus(err), err.Error())
		return
	}
	booking, err := h.bookings.GetByID(r.Context(), bookingID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load booking")
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

// GetTicket returns everything the ticket render needs; the PDF itself is
// produced client-side.
func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.ownedBooking(w, r)
	if !ok {
		return
	}
	if booking.Status != models.BookingStatusConfirmed {
		respondError(w, http.StatusConflict, "ticket is only available for confirmed bookings")
		return
	}
	flight, err := h.flights.GetByID(r.Context(), booking.FlightID)
	if err != nil {
		respondError(w, http.StatusNotFound, "flight not found")
		return
	}
	departure, err := h.airports.GetByID(r.Context(), flight.DepartureAirportID)
	if err != nil {
		respondError(w, http.StatusNotFound, "departure airport not found")
		return
	}
	arrival, err := h.airports.GetByID(r.Context(), flight.ArrivalAirportID)
	if err != nil {
		respondError(w, http.StatusNotFound, "arrival airport not found")
		return
	}
	airplane, err := h.airplanes.GetByID(r.Context(), flight.AirplaneID)
	if err != nil {
		respondError(w, http.StatusNotFound, "airplane not found")
		return
	}
	shortID := booking.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"file_name":         fmt.Sprintf("FireWings-Ticket-%s", shortID),
		"booking":           booking,
		"flight":            flight,
		"departure_airport": departure,
		"arrival_airport":   arrival,
		"airplane":          airplane,
	})
}

func (h *Handler) ownedBooking(w http.ResponseWriter, r *http.Request) (models.Booking, bool) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return models.Booking{}, false
	}
	booking, err := h.bookings.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil || booking.UserID != claims.Email {
		respondError(w, http.StatusNotFound, "booking not found")
		return models.Booking{}, false
	}
	return booking, true
}

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrFlightNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrBookingNotOwned):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotEnoughSeats),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrBookingAlreadyCancelled),
		errors.Is(err, services.ErrInvalidPassengerCount),
		errors.Is(err, services.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
