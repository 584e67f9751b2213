// Package domain contains the core business entities and rules for the flight
// booking system. These entities are storage-agnostic and form the foundation
// upon which all other components are built.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// FlightStatus represents the operational status of a scheduled flight.
type FlightStatus string

// Operational statuses a flight can be in.
const (
	FlightScheduled FlightStatus = "scheduled"
	FlightDelayed   FlightStatus = "delayed"
	FlightBoarding  FlightStatus = "boarding"
	FlightDeparted  FlightStatus = "departed"
	FlightArrived   FlightStatus = "arrived"
	FlightCancelled FlightStatus = "cancelled"
)

// validFlightStatuses defines the allowed flight statuses.
var validFlightStatuses = map[FlightStatus]bool{
	FlightScheduled: true,
	FlightDelayed:   true,
	FlightBoarding:  true,
	FlightDeparted:  true,
	FlightArrived:   true,
	FlightCancelled: true,
}

// IsValid checks if the status is a known value.
func (s FlightStatus) IsValid() bool {
	return validFlightStatuses[s]
}

// Flight represents a single scheduled service between two airports.
// It is created and updated by flight management and read-only to the
// search core.
type Flight struct {
	// ID is the unique identifier of the flight record
	ID string `json:"id"`

	// FlightNumber is the airline's flight number (e.g., "AA-100")
	FlightNumber string `json:"flight_number"`

	// AirlineID references the operating airline
	AirlineID string `json:"airline_id"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartureTime is the scheduled departure timestamp
	DepartureTime time.Time `json:"departure_time"`

	// ArrivalTime is the scheduled arrival timestamp
	ArrivalTime time.Time `json:"arrival_time"`

	// Price is the per-seat price; always positive
	Price float64 `json:"price"`

	// AvailableSeats is the number of seats still bookable
	AvailableSeats int `json:"available_seats"`

	// TotalSeats is the aircraft capacity
	TotalSeats int `json:"total_seats"`

	// AircraftType is the equipment operating the flight (optional)
	AircraftType string `json:"aircraft_type,omitempty"`

	// Status is the operational status of the flight
	Status FlightStatus `json:"status"`
}

// Normalize uppercases the airport codes and flight number. Matching is
// always performed on normalized codes.
func (f *Flight) Normalize() {
	f.FlightNumber = strings.ToUpper(strings.TrimSpace(f.FlightNumber))
	f.Origin = strings.ToUpper(strings.TrimSpace(f.Origin))
	f.Destination = strings.ToUpper(strings.TrimSpace(f.Destination))
}

// Duration returns the scheduled flight time in minutes.
func (f *Flight) Duration() int {
	return int(f.ArrivalTime.Sub(f.DepartureTime) / time.Minute)
}

// Validate checks the flight invariants.
// Returns a wrapped ErrInvalidEntity error if any invariant is violated.
func (f *Flight) Validate() error {
	if f.FlightNumber == "" {
		return fmt.Errorf("%w: flight_number is required", ErrInvalidEntity)
	}
	if !airportCodeRegex.MatchString(f.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidEntity, f.Origin)
	}
	if !airportCodeRegex.MatchString(f.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidEntity, f.Destination)
	}
	if f.Origin == f.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidEntity)
	}
	if !f.ArrivalTime.After(f.DepartureTime) {
		return fmt.Errorf("%w: arrival_time must be after departure_time", ErrInvalidEntity)
	}
	if f.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidEntity)
	}
	if f.TotalSeats <= 0 {
		return fmt.Errorf("%w: total_seats must be positive", ErrInvalidEntity)
	}
	if f.AvailableSeats < 0 {
		return fmt.Errorf("%w: available_seats cannot be negative", ErrInvalidEntity)
	}
	if f.AvailableSeats > f.TotalSeats {
		return fmt.Errorf("%w: available_seats cannot exceed total_seats", ErrInvalidEntity)
	}
	if f.Status == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidEntity)
	}
	if !f.Status.IsValid() {
		return fmt.Errorf("%w: unknown flight status %q", ErrInvalidEntity, f.Status)
	}
	return nil
}
