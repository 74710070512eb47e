package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"firewings/internal/middleware"
	"firewings/internal/money"
)

func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	balance, err := h.wallet.Balance(r.Context(), claims.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load wallet")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"balance":           balance,
		"balance_formatted": money.FormatMinor(balance),
	})
}

func (h *Handler) ListWalletTransactions(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	transactions, err := h.wallet.ListTransactions(r.Context(), claims.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load transactions")
		return
	}
	respondJSON(w, http.StatusOK, transactions)
}

type walletAmountRequest struct {
	Amount string `json:"amount"`
}

func (h *Handler) AddFunds(w http.ResponseWriter, r *http.Request) {
	h.adjustWallet(w, r, h.service.AddFunds)
}

func (h *Handler) DeductFunds(w http.ResponseWriter, r *http.Request) {
	h.adjustWallet(w, r, h.service.DeductFunds)
}

func (h *Handler) adjustWallet(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID string, amountMinor int64) (int64, error)) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req walletAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	amountMinor, err := money.ParseMinor(req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	balance, err := op(r.Context(), claims.Email, amountMinor)
	if err != nil {
		respondError(w, bookingErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"balance":           balance,
		"balance_formatted": money.FormatMinor(balance),
	})
}
