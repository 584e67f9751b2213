package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// airlineCodeRegex matches IATA/ICAO airline designators (2-3 uppercase
// alphanumerics).
var airlineCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)

// Airline is a carrier operating flights.
type Airline struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	LogoURL string `json:"logo_url,omitempty"`
	Country string `json:"country"`
}

// Normalize uppercases the airline code.
func (a *Airline) Normalize() {
	a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
}

// Validate checks the airline invariants.
func (a *Airline) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEntity)
	}
	if !airlineCodeRegex.MatchString(a.Code) {
		return fmt.Errorf("%w: code must be a 2-3 character airline designator, got %q", ErrInvalidEntity, a.Code)
	}
	if a.Country == "" {
		return fmt.Errorf("%w: country is required", ErrInvalidEntity)
	}
	return nil
}
