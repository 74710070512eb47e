package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"firewings/internal/db"
	"firewings/internal/models"
	"firewings/internal/money"
	"firewings/internal/store"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.flights.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load flights")
		return
	}
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" && to == "" {
		respondJSON(w, http.StatusOK, flights)
		return
	}
	filtered := make([]models.Flight, 0, len(flights))
	for _, flight := range flights {
		if from != "" && flight.DepartureAirportID != from {
			continue
		}
		if to != "" && flight.ArrivalAirportID != to {
			continue
		}
		filtered = append(filtered, flight)
	}
	respondJSON(w, http.StatusOK, filtered)
}

func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flight, err := h.flights.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "flight not found")
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

type flightRequest struct {
	FlightNumber       string    `json:"flight_number"`
	DepartureAirportID string    `json:"departure_airport_id"`
	ArrivalAirportID   string    `json:"arrival_airport_id"`
	DepartureTime      time.Time `json:"departure_time"`
	ArrivalTime        time.Time `json:"arrival_time"`
	AirplaneID         string    `json:"airplane_id"`
	Price              string    `json:"price"`
	AvailableSeats     int       `json:"available_seats"`
}

func (h *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req flightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	priceMinor, err := money.ParseMinor(req.Price)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid price")
		return
	}
	var flight models.Flight
	err = h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		var txErr error
		flight, txErr = h.flights.Create(r.Context(), tx, store.FlightInput{
			FlightNumber:       req.FlightNumber,
			DepartureAirportID: req.DepartureAirportID,
			ArrivalAirportID:   req.ArrivalAirportID,
			DepartureTime:      req.DepartureTime,
			ArrivalTime:        req.ArrivalTime,
			AirplaneID:         req.AirplaneID,
			PriceMinor:         priceMinor,
			AvailableSeats:     req.AvailableSeats,
		})
		return txErr
	})
	if err != nil {
		respondError(w, flightErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, flight)
}

func (h *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	var req flightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	priceMinor, err := money.ParseMinor(req.Price)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid price")
		return
	}
	flight := models.Flight{
		ID:                 chi.URLParam(r, "id"),
		FlightNumber:       req.FlightNumber,
		DepartureAirportID: req.DepartureAirportID,
		ArrivalAirportID:   req.ArrivalAirportID,
		DepartureTime:      req.DepartureTime,
		ArrivalTime:        req.ArrivalTime,
		AirplaneID:         req.AirplaneID,
		PriceMinor:         priceMinor,
		AvailableSeats:     req.AvailableSeats,
	}
	err = h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		return h.flights.Update(r.Context(), tx, flight)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "flight not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to update flight")
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

func (h *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		return h.flights.Delete(r.Context(), tx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, http.StatusNotFound, "flight not found")
		case errors.Is(err, store.ErrFlightHasBookings):
			respondError(w, http.StatusConflict, "cannot delete flight as it has active bookings")
		default:
			respondError(w, http.StatusInternalServerError, "unable to delete flight")
		}
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Flight deleted successfully"})
}

func flightErrorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrSameAirport),
		errors.Is(err, store.ErrInvalidSchedule),
		errors.Is(err, store.ErrInvalidPrice),
		errors.Is(err, store.ErrSeatsOutOfRange),
		errors.Is(err, store.ErrNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
