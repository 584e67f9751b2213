// Package memory provides an in-memory implementation of the persistence
// ports. It backs local development and tests; semantics mirror the postgres
// adapter exactly, including FindFlights bound handling.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// Store holds all entities in maps guarded by a single RWMutex. Search is
// read-heavy, so readers share the lock.
type Store struct {
	mu sync.RWMutex

	flights    map[string]domain.Flight
	users      map[string]domain.User
	passengers map[string]domain.Passenger
	airlines   map[string]domain.Airline
	airports   map[string]domain.Airport
	bookings   map[string]domain.Booking
	payments   map[string]domain.Payment
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		flights:    make(map[string]domain.Flight),
		users:      make(map[string]domain.User),
		passengers: make(map[string]domain.Passenger),
		airlines:   make(map[string]domain.Airline),
		airports:   make(map[string]domain.Airport),
		bookings:   make(map[string]domain.Booking),
		payments:   make(map[string]domain.Payment),
	}
}

// Compile-time port checks.
var (
	_ domain.FlightStore    = (*Store)(nil)
	_ domain.UserStore      = (*Store)(nil)
	_ domain.PassengerStore = (*Store)(nil)
	_ domain.AirlineStore   = (*Store)(nil)
	_ domain.AirportStore   = (*Store)(nil)
	_ domain.BookingStore   = (*Store)(nil)
	_ domain.PaymentStore   = (*Store)(nil)
)

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
