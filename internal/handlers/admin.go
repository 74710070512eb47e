package handlers

import (
	"net/http"
	"strings"

	"firewings/internal/auth"
	"firewings/internal/websocket"
)

func (h *Handler) AdminListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load bookings")
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (h *Handler) AdminListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load reviews")
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// WSNotifications upgrades the connection and registers the client with the
// hub. Browsers cannot set headers on websocket dials, so the token is also
// accepted as a query parameter.
func (h *Handler) WSNotifications(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		header := r.Header.Get("Authorization")
		token = strings.TrimPrefix(header, "Bearer ")
	}
	if token == "" {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	claims, err := auth.ParseToken(h.cfg.JWTSecret, token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	websocket.ServeWS(w, r, h.hub, claims.Email)
}
