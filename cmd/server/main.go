package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"firewings/internal/config"
	"firewings/internal/db"
	"firewings/internal/handlers"
	"firewings/internal/services"
	"firewings/internal/store"
	"firewings/internal/websocket"
)

func main() {
	cfg := config.Load()
	seed, err := store.Seed(cfg.OpeningBalanceMinor)
	if err != nil {
		log.Fatalf("failed to build seed data: %v", err)
	}
	database := db.Open(seed)

	users := store.NewUserStore(database)
	airports := store.NewAirportStore(database)
	airplanes := store.NewAirplaneStore(database)
	flights := store.NewFlightStore(database)
	bookings := store.NewBookingStore(database)
	reviews := store.NewReviewStore(database)
	wallet := store.NewWalletStore(database)
	hub := websocket.NewHub()
	service := services.NewBookingService(database, flights, bookings, wallet, hub)

	handler := handlers.New(cfg, database, users, airports, airplanes, flights, bookings, reviews, wallet, service, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("firewings API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
