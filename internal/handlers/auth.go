package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"firewings/internal/auth"
	"firewings/internal/db"
	"firewings/internal/middleware"
	"firewings/internal/models"
	"firewings/internal/store"
	"firewings/internal/validator"

	"github.com/google/uuid"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateName(req.Name); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.ValidateEmail(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.ValidatePassword(req.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.simulateLatency()
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to secure password")
		return
	}
	err = h.txRunner.WithTx(r.Context(), func(tx *db.Tx) error {
		if err := h.users.Create(r.Context(), tx, models.User{
			Email:        req.Email,
			Name:         strings.TrimSpace(req.Name),
			Phone:        strings.TrimSpace(req.Phone),
			PasswordHash: passwordHash,
			Role:         models.RoleUser,
			CreatedAt:    time.Now(),
		}); err != nil {
			return err
		}
		if err := h.wallet.CreateWallet(r.Context(), tx, req.Email); err != nil {
			return err
		}
		if _, err := h.wallet.AdjustBalance(r.Context(), tx, req.Email, h.cfg.OpeningBalanceMinor); err != nil {
			return err
		}
		return h.wallet.AppendTransaction(r.Context(), tx, models.WalletTransaction{
			ID:          uuid.NewString(),
			UserID:      req.Email,
			AmountMinor: h.cfg.OpeningBalanceMinor,
			Type:        models.TransactionCredit,
			Description: "Initial deposit",
			Date:        time.Now(),
		})
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondError(w, http.StatusConflict, "this email is already registered")
			return
		}
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Your account has been created! You can now login.",
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	h.simulateLatency()
	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	token, err := auth.GenerateToken(h.cfg.JWTSecret, user, h.cfg.TokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]string{
			"email": user.Email,
			"role":  string(user.Role),
			"name":  user.Name,
		},
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.users.GetByEmail(r.Context(), claims.Email)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unable to load user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// simulateLatency reproduces the demo's fixed pause on login and
// registration.
func (h *Handler) simulateLatency() {
	if h.cfg.AuthDelay > 0 {
		time.Sleep(h.cfg.AuthDelay)
	}
}
