package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"firewings/internal/config"
	"firewings/internal/db"
	"firewings/internal/models"
	"firewings/internal/services"
	"firewings/internal/store"
	"firewings/internal/websocket"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{
		AppEnv:              "test",
		Port:                "0",
		JWTSecret:           "secret",
		TokenTTL:            time.Minute,
		AllowedOrigins:      "*",
		OpeningBalanceMinor: 1000000,
		AuthDelay:           0,
	}
	state, err := store.Seed(cfg.OpeningBalanceMinor)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	database := db.Open(state)
	users := store.NewUserStore(database)
	airports := store.NewAirportStore(database)
	airplanes := store.NewAirplaneStore(database)
	flights := store.NewFlightStore(database)
	bookings := store.NewBookingStore(database)
	reviews := store.NewReviewStore(database)
	wallet := store.NewWalletStore(database)
	hub := websocket.NewHub()
	service := services.NewBookingService(database, flights, bookings, wallet, hub)
	return New(cfg, database, users, airports, airplanes, flights, bookings, reviews, wallet, service, hub).Routes()
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	request := httptest.NewRequest(method, path, &buf)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func loginAs(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()
	recorder := doRequest(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login as %s failed: %d %s", email, recorder.Code, recorder.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("empty token in login response")
	}
	return resp.Token
}

func TestLoginSuccess(t *testing.T) {
	router := newTestRouter(t)
	recorder := doRequest(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "user@gmail.com", "password": "user123",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" || resp.User.Role != "user" || resp.User.Name != "Regular User" {
		t.Fatalf("unexpected login response: %+v", resp)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)
	recorder := doRequest(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "user@gmail.com", "password": "wrong",
	})
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	router := newTestRouter(t)
	recorder := doRequest(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"name": "New Flyer", "email": "new@gmail.com", "password": "secret1",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	token := loginAs(t, router, "new@gmail.com", "secret1")
	walletRec := doRequest(t, router, http.MethodGet, "/wallet", token, nil)
	if walletRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", walletRec.Code, walletRec.Body.String())
	}
	var wallet struct {
		Balance          int64  `json:"balance"`
		BalanceFormatted string `json:"balance_formatted"`
	}
	if err := json.NewDecoder(walletRec.Body).Decode(&wallet); err != nil {
		t.Fatalf("decode wallet: %v", err)
	}
	if wallet.Balance != 1000000 || wallet.BalanceFormatted != "10000.00" {
		t.Fatalf("unexpected opening wallet: %+v", wallet)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)
	recorder := doRequest(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Copy Cat", "email": "user@gmail.com", "password": "secret1",
	})
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)
	recorder := doRequest(t, router, http.MethodGet, "/flights", "", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
}

func TestAdminRouteForbiddenForUser(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "user@gmail.com", "user123")
	recorder := doRequest(t, router, http.MethodPost, "/admin/airports", token, map[string]string{
		"name": "Test Airport", "code": "TST", "city": "Test", "country": "India",
	})
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", recorder.Code)
	}
}

func TestBookingRouteForbiddenForAdmin(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "admin@gmail.com", "admin123")
	recorder := doRequest(t, router, http.MethodPost, "/bookings", token, map[string]any{
		"flight_id": "2", "passenger_count": 1,
	})
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", recorder.Code)
	}
}

func TestAdminCreateAirportDuplicateCode(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "admin@gmail.com", "admin123")
	recorder := doRequest(t, router, http.MethodPost, "/admin/airports", token, map[string]string{
		"name": "Delhi Again", "code": "del", "city": "Delhi", "country": "India",
	})
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestCreateBookingViaAPI(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "user@gmail.com", "user123")

	recorder := doRequest(t, router, http.MethodPost, "/bookings", token, map[string]any{
		"flight_id": "2", "passenger_count": 1,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var booking models.Booking
	if err := json.NewDecoder(recorder.Body).Decode(&booking); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if booking.Status != models.BookingStatusConfirmed || booking.TotalAmountMinor != 450000 {
		t.Fatalf("unexpected booking: %#v", booking)
	}

	walletRec := doRequest(t, router, http.MethodGet, "/wallet", token, nil)
	var wallet struct {
		Balance int64 `json:"balance"`
	}
	if err := json.NewDecoder(walletRec.Body).Decode(&wallet); err != nil {
		t.Fatalf("decode wallet: %v", err)
	}
	if wallet.Balance != 550000 {
		t.Fatalf("expected balance 550000, got %d", wallet.Balance)
	}

	listRec := doRequest(t, router, http.MethodGet, "/bookings", token, nil)
	var bookings []models.Booking
	if err := json.NewDecoder(listRec.Body).Decode(&bookings); err != nil {
		t.Fatalf("decode bookings: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
}

func TestCreateBookingTooManyPassengers(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "user@gmail.com", "user123")
	recorder := doRequest(t, router, http.MethodPost, "/bookings", token, map[string]any{
		"flight_id": "2", "passenger_count": 11,
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestCancelBookingViaAPI(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "user@gmail.com", "user123")

	recorder := doRequest(t, router, http.MethodPost, "/bookings/1/cancel", token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var resp struct {
		Refund string `json:"refund"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Refund != "8000.00" {
		t.Fatalf("expected refund 8000.00, got %s", resp.Refund)
	}

	flightRec := doRequest(t, router, http.MethodGet, "/flights/1", token, nil)
	var flight models.Flight
	if err := json.NewDecoder(flightRec.Body).Decode(&flight); err != nil {
		t.Fatalf("decode flight: %v", err)
	}
	if flight.AvailableSeats != 152 {
		t.Fatalf("expected 152 seats after cancel, got %d", flight.AvailableSeats)
	}
}

func TestGetOtherUsersBooking(t *testing.T) {
	router := newTestRouter(t)
	registerRec := doRequest(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Other Flyer", "email": "other@gmail.com", "password": "secret1",
	})
	if registerRec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", registerRec.Code)
	}
	token := loginAs(t, router, "other@gmail.com", "secret1")

	recorder := doRequest(t, router, http.MethodGet, "/bookings/1", token, nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestWalletDeposit(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "user@gmail.com", "user123")

	recorder := doRequest(t, router, http.MethodPost, "/wallet/deposit", token, map[string]string{
		"amount": "2500.00",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var resp struct {
		Balance          int64  `json:"balance"`
		BalanceFormatted string `json:"balance_formatted"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Balance != 1250000 || resp.BalanceFormatted != "12500.00" {
		t.Fatalf("unexpected wallet response: %+v", resp)
	}
}

func TestWalletDepositInvalidAmount(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "user@gmail.com", "user123")
	for _, amount := range []string{"abc", "10.123", ""} {
		recorder := doRequest(t, router, http.MethodPost, "/wallet/deposit", token, map[string]string{
			"amount": amount,
		})
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("amount %q: expected 400, got %d", amount, recorder.Code)
		}
	}
}

func TestSubmitReviewAndList(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "user@gmail.com", "user123")

	recorder := doRequest(t, router, http.MethodPost, "/reviews", token, map[string]any{
		"flight_id": "2", "rating": 5, "comment": "Smooth flight",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	listRec := doRequest(t, router, http.MethodGet, "/flights/2/reviews", token, nil)
	var reviews []models.Review
	if err := json.NewDecoder(listRec.Body).Decode(&reviews); err != nil {
		t.Fatalf("decode reviews: %v", err)
	}
	if len(reviews) != 1 || reviews[0].UserName != "Regular User" || reviews[0].Rating != 5 {
		t.Fatalf("unexpected reviews: %#v", reviews)
	}
}

func TestSubmitReviewInvalidRating(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "user@gmail.com", "user123")
	recorder := doRequest(t, router, http.MethodPost, "/reviews", token, map[string]any{
		"flight_id": "2", "rating": 6,
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestTicketForConfirmedBooking(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "user@gmail.com", "user123")

	recorder := doRequest(t, router, http.MethodGet, "/bookings/1/ticket", token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var resp struct {
		FileName string          `json:"file_name"`
		Flight   models.Flight   `json:"flight"`
		Airplane models.Airplane `json:"airplane"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.FileName != "FireWings-Ticket-1" {
		t.Fatalf("unexpected file name: %s", resp.FileName)
	}
	if resp.Flight.FlightNumber != "FW101" || resp.Airplane.Model != "Boeing 737" {
		t.Fatalf("unexpected ticket payload: %+v", resp)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	recorder := doRequest(t, router, http.MethodGet, "/health", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
}
