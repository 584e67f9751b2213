package domain

import (
	"fmt"
	"time"
)

// Passenger is a traveler profile attached to a user account. One user may
// manage several passengers (family members, colleagues).
type Passenger struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	PassportNumber string    `json:"passport_number,omitempty"`
	Nationality    string    `json:"nationality"`
	CreatedAt      time.Time `json:"created_at"`
}

// Validate checks the passenger invariants.
func (p *Passenger) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidEntity)
	}
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("%w: first_name and last_name are required", ErrInvalidEntity)
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: date_of_birth is required", ErrInvalidEntity)
	}
	if p.Nationality == "" {
		return fmt.Errorf("%w: nationality is required", ErrInvalidEntity)
	}
	return nil
}
