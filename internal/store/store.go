package store

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateCode     = errors.New("airport code already exists")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrAirportInUse      = errors.New("airport is used in existing flights")
	ErrAirplaneInUse     = errors.New("airplane is used in existing flights")
	ErrFlightHasBookings = errors.New("flight has active bookings")
	ErrInvalidCapacity   = errors.New("capacity must be positive")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrSameAirport       = errors.New("departure and arrival airports must differ")
	ErrInvalidSchedule   = errors.New("arrival time must be after departure time")
	ErrSeatsOutOfRange   = errors.New("available seats must be between zero and airplane capacity")
)
