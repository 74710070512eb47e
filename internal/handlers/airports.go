package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"firewings/internal/db"
	"firewings/internal/models"
	"firewings/internal/store"
	"firewings/internal/validator"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListAirports(w http.ResponseWriter, r *http.Request) {
	airports, err := h.airports.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load airports")
		return
	}
	respondJSON(w, http.StatusOK, airports)
}

type airportRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (req *airportRequest) validate() (string, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.Country) == "" {
		return "", errors.New("name, city and country are required")
	}
	return validator.NormalizeAirportCode(req.Code)
}

func (h *Handler) CreateAirport(w http.ResponseWriter, r *http.Request) {
	var req airportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	code, err := req.validate()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var airport models.Airport
	err = h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		var txErr error
		airport, txErr = h.airports.Create(r.Context(), tx, store.AirportInput{
			Name:    strings.TrimSpace(req.Name),
			Code:    code,
			City:    strings.TrimSpace(req.City),
			Country: strings.TrimSpace(req.Country),
		})
		return txErr
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateCode) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to add airport")
		return
	}
	respondJSON(w, http.StatusCreated, airport)
}

func (h *Handler) UpdateAirport(w http.ResponseWriter, r *http.Request) {
	var req airportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	code, err := req.validate()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	airport := models.Airport{
		ID:      chi.URLParam(r, "id"),
		Name:    strings.TrimSpace(req.Name),
		Code:    code,
		City:    strings.TrimSpace(req.City),
		Country: strings.TrimSpace(req.Country),
	}
	err = h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		return h.airports.Update(r.Context(), tx, airport)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, http.StatusNotFound, "airport not found")
		case errors.Is(err, store.ErrDuplicateCode):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "unable to update airport")
		}
		return
	}
	respondJSON(w, http.StatusOK, airport)
}

func (h *Handler) DeleteAirport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		return h.airports.Delete(r.Context(), tx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, http.StatusNotFound, "airport not found")
		case errors.Is(err, store.ErrAirportInUse):
			respondError(w, http.StatusConflict, "cannot delete airport as it is used in existing flights")
		default:
			respondError(w, http.StatusInternalServerError, "unable to delete airport")
		}
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Airport deleted successfully"})
}
