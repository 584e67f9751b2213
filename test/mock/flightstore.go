// Package mock provides test doubles for the flight booking system.
// These mocks are designed for tests where we need configurable
// behavior (delays, errors, specific flight inventories).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/store/memory"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// FlightStore is a configurable mock implementation of domain.FlightStore.
// Lookups are served by a real in-memory store so query semantics match
// production; delays and errors can be injected on top to exercise timeout
// and failure paths.
type FlightStore struct {
	*memory.Store
	err       error
	delay     time.Duration
	findCalls int
	mu        sync.Mutex
}

// NewFlightStore creates an empty mock flight store. It is configured
// using the builder pattern methods.
func NewFlightStore() *FlightStore {
	return &FlightStore{Store: memory.New()}
}

// WithFlights seeds the store with the given flights.
// Panics on duplicate IDs or flight numbers; tests should use unique records.
func (s *FlightStore) WithFlights(flights ...domain.Flight) *FlightStore {
	for i := range flights {
		f := flights[i]
		if err := s.Store.CreateFlight(context.Background(), &f); err != nil {
			panic("mock: seeding flight: " + err.Error())
		}
	}
	return s
}

// WithError configures FindFlights to return the given error.
func (s *FlightStore) WithError(err error) *FlightStore {
	s.err = err
	return s
}

// WithDelay configures FindFlights to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (s *FlightStore) WithDelay(d time.Duration) *FlightStore {
	s.delay = d
	return s
}

// FindFlights implements domain.FlightStore.FindFlights. It respects
// context cancellation, applies the configured delay, and returns the
// configured error or the matching seeded flights.
func (s *FlightStore) FindFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	s.mu.Lock()
	s.findCalls++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, s.err
	}

	return s.Store.FindFlights(ctx, q)
}

// FindCalls returns the number of times FindFlights was called.
// This is useful for verifying which search stages ran.
func (s *FlightStore) FindCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findCalls
}

// Reset resets the call count to zero.
func (s *FlightStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findCalls = 0
}

// Ensure FlightStore implements domain.FlightStore at compile time.
var _ domain.FlightStore = (*FlightStore)(nil)
