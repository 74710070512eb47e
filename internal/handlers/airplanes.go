package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"firewings/internal/db"
	"firewings/internal/models"
	"firewings/internal/store"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListAirplanes(w http.ResponseWriter, r *http.Request) {
	airplanes, err := h.airplanes.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load airplanes")
		return
	}
	respondJSON(w, http.StatusOK, airplanes)
}

type airplaneRequest struct {
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	Capacity     int    `json:"capacity"`
}

func (h *Handler) CreateAirplane(w http.ResponseWriter, r *http.Request) {
	var req airplaneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Model) == "" || strings.TrimSpace(req.Manufacturer) == "" {
		respondError(w, http.StatusBadRequest, "model and manufacturer are required")
		return
	}
	var airplane models.Airplane
	err := h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		var txErr error
		airplane, txErr = h.airplanes.Create(r.Context(), tx, store.AirplaneInput{
			Model:        strings.TrimSpace(req.Model),
			Manufacturer: strings.TrimSpace(req.Manufacturer),
			Capacity:     req.Capacity,
		})
		return txErr
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidCapacity) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to add airplane")
		return
	}
	respondJSON(w, http.StatusCreated, airplane)
}

func (h *Handler) UpdateAirplane(w http.ResponseWriter, r *http.Request) {
	var req airplaneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	airplane := models.Airplane{
		ID:           chi.URLParam(r, "id"),
		Model:        strings.TrimSpace(req.Model),
		Manufacturer: strings.TrimSpace(req.Manufacturer),
		Capacity:     req.Capacity,
	}
	err := h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		return h.airplanes.Update(r.Context(), tx, airplane)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, http.StatusNotFound, "airplane not found")
		case errors.Is(err, store.ErrInvalidCapacity):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "unable to update airplane")
		}
		return
	}
	respondJSON(w, http.StatusOK, airplane)
}

func (h *Handler) DeleteAirplane(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		return h.airplanes.Delete(r.Context(), tx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, http.StatusNotFound, "airplane not found")
		case errors.Is(err, store.ErrAirplaneInUse):
			respondError(w, http.StatusConflict, "cannot delete airplane as it is used in existing flights")
		default:
			respondError(w, http.StatusInternalServerError, "unable to delete airplane")
		}
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Airplane deleted successfully"})
}
