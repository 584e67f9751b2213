package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Search parameter bounds and defaults.
const (
	// MinLayover is the minimum connection time between two legs.
	// It is a product constant, not a request parameter.
	MinLayover = 90 * time.Minute

	// DefaultMaxLayoverHours is used when the request does not set one.
	DefaultMaxLayoverHours = 6

	// MinLayoverHoursBound and MaxLayoverHoursBound bound the
	// max_layover_hours request parameter.
	MinLayoverHoursBound = 1
	MaxLayoverHoursBound = 24

	// DefaultMaxResults is used when the request does not set a cap.
	DefaultMaxResults = 50

	// MaxResultsCap is the hard upper bound on returned itineraries.
	MaxResultsCap = 100
)

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// SearchCriteria defines the parameters for an itinerary search.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination"`

	// DepartureDate is the desired calendar day in YYYY-MM-DD format.
	// Empty means any day.
	DepartureDate string `json:"departure_date,omitempty"`

	// IncludeConnections controls whether one-stop itineraries are
	// synthesized (default: true)
	IncludeConnections bool `json:"include_connections"`

	// MaxLayoverHours bounds the connection window, in [1, 24]. Nil means
	// unset; an explicit zero is invalid (default: 6)
	MaxLayoverHours *int `json:"max_layover_hours,omitempty"`

	// MinPrice drops itineraries cheaper than this bound (inclusive)
	MinPrice *float64 `json:"min_price,omitempty"`

	// MaxPrice drops itineraries more expensive than this bound (inclusive)
	MaxPrice *float64 `json:"max_price,omitempty"`

	// MinSeats requires this many available seats on every segment. Nil
	// means unset; an explicit zero is invalid (default: 1)
	MinSeats *int `json:"min_seats,omitempty"`

	// MaxResults caps the returned itinerary count, at most 100. Nil means
	// unset; an explicit zero is invalid (default: 50)
	MaxResults *int `json:"max_results,omitempty"`
}

// Normalize uppercases airport codes and trims whitespace.
// Matching is always performed on normalized codes.
func (c *SearchCriteria) Normalize() {
	c.Origin = strings.ToUpper(strings.TrimSpace(c.Origin))
	c.Destination = strings.ToUpper(strings.TrimSpace(c.Destination))
	c.DepartureDate = strings.TrimSpace(c.DepartureDate)
}

// SetDefaults fills unset optional fields. Only nil fields are touched:
// an explicit value, even an out-of-range one like zero, is preserved so
// Validate can reject it.
func (c *SearchCriteria) SetDefaults() {
	if c.MaxLayoverHours == nil {
		c.MaxLayoverHours = intPtr(DefaultMaxLayoverHours)
	}
	if c.MinSeats == nil {
		c.MinSeats = intPtr(1)
	}
	if c.MaxResults == nil {
		c.MaxResults = intPtr(DefaultMaxResults)
	}
}

func intPtr(v int) *int { return &v }

// Validate checks the criteria for executability. It must be called after
// Normalize and SetDefaults. Returns a wrapped ErrInvalidCriteria error; no
// store query may be attempted when validation fails.
func (c *SearchCriteria) Validate() error {
	if c.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidCriteria)
	}
	if !airportCodeRegex.MatchString(c.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidCriteria, c.Origin)
	}
	if c.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidCriteria)
	}
	if !airportCodeRegex.MatchString(c.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidCriteria, c.Destination)
	}
	if c.Origin == c.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidCriteria)
	}
	if c.DepartureDate != "" {
		if !dateRegex.MatchString(c.DepartureDate) {
			return fmt.Errorf("%w: departure_date must be in YYYY-MM-DD format, got %q", ErrInvalidCriteria, c.DepartureDate)
		}
		if _, err := time.Parse("2006-01-02", c.DepartureDate); err != nil {
			return fmt.Errorf("%w: departure_date is not a valid date: %s", ErrInvalidCriteria, c.DepartureDate)
		}
	}
	if c.MaxLayoverHours != nil && (*c.MaxLayoverHours < MinLayoverHoursBound || *c.MaxLayoverHours > MaxLayoverHoursBound) {
		return fmt.Errorf("%w: max_layover_hours must be between %d and %d, got %d",
			ErrInvalidCriteria, MinLayoverHoursBound, MaxLayoverHoursBound, *c.MaxLayoverHours)
	}
	if c.MinPrice != nil && *c.MinPrice < 0 {
		return fmt.Errorf("%w: min_price cannot be negative", ErrInvalidCriteria)
	}
	if c.MaxPrice != nil && *c.MaxPrice < 0 {
		return fmt.Errorf("%w: max_price cannot be negative", ErrInvalidCriteria)
	}
	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		return fmt.Errorf("%w: min_price cannot exceed max_price", ErrInvalidCriteria)
	}
	if c.MinSeats != nil && *c.MinSeats < 1 {
		return fmt.Errorf("%w: min_seats must be at least 1", ErrInvalidCriteria)
	}
	if c.MaxResults != nil && (*c.MaxResults < 1 || *c.MaxResults > MaxResultsCap) {
		return fmt.Errorf("%w: max_results must be between 1 and %d, got %d",
			ErrInvalidCriteria, MaxResultsCap, *c.MaxResults)
	}
	return nil
}

// MaxLayover returns the maximum layover as a duration.
func (c *SearchCriteria) MaxLayover() time.Duration {
	hours := DefaultMaxLayoverHours
	if c.MaxLayoverHours != nil {
		hours = *c.MaxLayoverHours
	}
	return time.Duration(hours) * time.Hour
}

// SeatsRequired returns the effective per-segment seat floor.
func (c *SearchCriteria) SeatsRequired() int {
	if c.MinSeats == nil {
		return 1
	}
	return *c.MinSeats
}

// ResultLimit returns the effective cap on returned itineraries.
func (c *SearchCriteria) ResultLimit() int {
	if c.MaxResults == nil {
		return DefaultMaxResults
	}
	return *c.MaxResults
}

// DepartureDay resolves the optional departure date into a calendar-day
// window [start, next start) in the given reference timezone. The boolean is
// false when no date was supplied.
func (c *SearchCriteria) DepartureDay(loc *time.Location) (start, end time.Time, ok bool, err error) {
	if c.DepartureDate == "" {
		return time.Time{}, time.Time{}, false, nil
	}
	day, err := time.ParseInLocation("2006-01-02", c.DepartureDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false,
			fmt.Errorf("%w: departure_date is not a valid date: %s", ErrInvalidCriteria, c.DepartureDate)
	}
	return day, day.AddDate(0, 0, 1), true, nil
}
