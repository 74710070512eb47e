package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"firewings/internal/db"
	"firewings/internal/middleware"
	"firewings/internal/models"
	"firewings/internal/validator"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type submitReviewRequest struct {
	FlightID string `json:"flight_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateRating(req.Rating); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.flights.GetByID(r.Context(), req.FlightID); err != nil {
		respondError(w, http.StatusNotFound, "flight not found")
		return
	}
	review := models.Review{
		ID:       uuid.New().String(),
		FlightID: req.FlightID,
		UserID:   claims.Email,
		UserName: claims.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Date:     time.Now().UTC(),
	}
	err := h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		return h.reviews.Create(r.Context(), tx, review)
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to save review")
		return
	}
	respondJSON(w, http.StatusCreated, review)
}

func (h *Handler) ListFlightReviews(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if _, err := h.flights.GetByID(r.Context(), flightID); err != nil {
		respondError(w, http.StatusNotFound, "flight not found")
		return
	}
	reviews, err := h.reviews.ListByFlight(r.Context(), flightID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load reviews")
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}
