// Package testutil provides test helper functions for unit tests.
package testutil

import (
	"testing"
	"time"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FlightOption mutates a flight built by NewFlight.
type FlightOption func(*domain.Flight)

// NewFlight builds a scheduled flight with sensible defaults. departure and
// arrival are RFC3339 strings; options override individual fields.
func NewFlight(t *testing.T, id, origin, destination, departure, arrival string, opts ...FlightOption) domain.Flight {
	t.Helper()
	f := domain.Flight{
		ID:             id,
		FlightNumber:   "FB" + id,
		AirlineID:      "airline-1",
		Origin:         origin,
		Destination:    destination,
		DepartureTime:  MustParseTime(t, departure),
		ArrivalTime:    MustParseTime(t, arrival),
		Price:          200,
		AvailableSeats: 50,
		TotalSeats:     180,
		Status:         domain.FlightScheduled,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithPrice sets the flight price.
func WithPrice(price float64) FlightOption {
	return func(f *domain.Flight) { f.Price = price }
}

// WithSeats sets the available seat count.
func WithSeats(seats int) FlightOption {
	return func(f *domain.Flight) { f.AvailableSeats = seats }
}

// WithStatus sets the flight status.
func WithStatus(status domain.FlightStatus) FlightOption {
	return func(f *domain.Flight) { f.Status = status }
}

// WithFlightNumber sets the flight number.
func WithFlightNumber(number string) FlightOption {
	return func(f *domain.Flight) { f.FlightNumber = number }
}
