package domain

import (
	"fmt"
	"strings"
	"time"
)

// Airport is a served airport keyed by its IATA code.
type Airport struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`

	// Timezone is the IANA identifier for local schedules (e.g.,
	// "America/New_York")
	Timezone string `json:"timezone"`
}

// Normalize uppercases the IATA code.
func (a *Airport) Normalize() {
	a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
}

// Validate checks the airport invariants, including that the timezone is a
// loadable IANA name.
func (a *Airport) Validate() error {
	if !airportCodeRegex.MatchString(a.Code) {
		return fmt.Errorf("%w: code must be a valid 3-letter IATA code, got %q", ErrInvalidEntity, a.Code)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEntity)
	}
	if a.City == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidEntity)
	}
	if a.Country == "" {
		return fmt.Errorf("%w: country is required", ErrInvalidEntity)
	}
	if a.Timezone == "" {
		return fmt.Errorf("%w: timezone is required", ErrInvalidEntity)
	}
	if _, err := time.LoadLocation(a.Timezone); err != nil {
		return fmt.Errorf("%w: timezone %q is not a valid IANA name", ErrInvalidEntity, a.Timezone)
	}
	return nil
}
