package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsValid checks if the status is a known value.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	default:
		return false
	}
}

// Booking reserves seats on a flight for a set of passengers. It starts
// pending and is confirmed when its payment completes.
type Booking struct {
	ID string `json:"id"`

	// BookingReference is the human-facing unique reservation code
	BookingReference string `json:"booking_reference"`

	UserID       string        `json:"user_id"`
	FlightID     string        `json:"flight_id"`
	PassengerIDs []string      `json:"passenger_ids"`
	Seats        int           `json:"seats"`
	TotalPrice   float64       `json:"total_price"`
	Status       BookingStatus `json:"status"`
	PaymentID    string        `json:"payment_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Validate checks the booking invariants.
func (b *Booking) Validate() error {
	if b.UserID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidEntity)
	}
	if b.FlightID == "" {
		return fmt.Errorf("%w: flight_id is required", ErrInvalidEntity)
	}
	if b.Seats <= 0 {
		return fmt.Errorf("%w: seats must be positive", ErrInvalidEntity)
	}
	if len(b.PassengerIDs) > 0 && len(b.PassengerIDs) != b.Seats {
		return fmt.Errorf("%w: passenger count %d does not match %d seats", ErrInvalidEntity, len(b.PassengerIDs), b.Seats)
	}
	if b.Status != "" && !b.Status.IsValid() {
		return fmt.Errorf("%w: unknown booking status %q", ErrInvalidEntity, b.Status)
	}
	return nil
}
