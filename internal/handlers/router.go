package handlers

import (
	"net/http"

	"firewings/internal/config"
	"firewings/internal/db"
	"firewings/internal/middleware"
	"firewings/internal/models"
	"firewings/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	cfg       config.Config
	txRunner  db.TxRunner
	users     UserStore
	airports  AirportStore
	airplanes AirplaneStore
	flights   FlightStore
	bookings  BookingStore
	reviews   ReviewStore
	wallet    WalletStore
	service   BookingService
	hub       *websocket.Hub
}

func New(cfg config.Config, txRunner db.TxRunner, users UserStore, airports AirportStore, airplanes AirplaneStore, flights FlightStore, bookings BookingStore, reviews ReviewStore, wallet WalletStore, service BookingService, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:       cfg,
		txRunner:  txRunner,
		users:     users,
		airports:  airports,
		airplanes: airplanes,
		flights:   flights,
		bookings:  bookings,
		reviews:   reviews,
		wallet:    wallet,
		service:   service,
		hub:       hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authed := middleware.Auth(h.cfg.JWTSecret)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(authed).Get("/me", h.Me)
	})

	router.Group(func(r chi.Router) {
		r.Use(authed)
		r.Get("/airports", h.ListAirports)
		r.Get("/airplanes", h.ListAirplanes)
		r.Get("/flights", h.ListFlights)
		r.Get("/flights/{id}", h.GetFlight)
		r.Get("/flights/{id}/reviews", h.ListFlightReviews)
	})

	router.Group(func(r chi.Router) {
		r.Use(authed, middleware.RequireRole(models.RoleUser))
		r.Post("/bookings", h.CreateBooking)
		r.Get("/bookings", h.ListMyBookings)
		r.Get("/bookings/{id}", h.GetBooking)
		r.Post("/bookings/{id}/cancel", h.CancelBooking)
		r.Post("/bookings/{id}/rebook", h.RebookFlight)
		r.Get("/bookings/{id}/ticket", h.GetTicket)
		r.Post("/reviews", h.SubmitReview)
		r.Get("/wallet", h.GetWallet)
		r.Get("/wallet/transactions", h.ListWalletTransactions)
		r.Post("/wallet/deposit", h.AddFunds)
		r.Post("/wallet/withdraw", h.DeductFunds)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(authed, middleware.RequireRole(models.RoleAdmin))
		r.Post("/airports", h.CreateAirport)
		r.Put("/airports/{id}", h.UpdateAirport)
		r.Delete("/airports/{id}", h.DeleteAirport)
		r.Post("/airplanes", h.CreateAirplane)
		r.Put("/airplanes/{id}", h.UpdateAirplane)
		r.Delete("/airplanes/{id}", h.DeleteAirplane)
		r.Post("/flights", h.CreateFlight)
		r.Put("/flights/{id}", h.UpdateFlight)
		r.Delete("/flights/{id}", h.DeleteFlight)
		r.Get("/bookings", h.AdminListBookings)
		r.Get("/reviews", h.AdminListReviews)
		r.Get("/users", h.AdminListUsers)
	})

	router.Get("/ws/notifications", h.WSNotifications)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}
