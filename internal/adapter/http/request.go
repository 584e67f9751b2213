// Package http provides the HTTP handler layer for the booking API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// ParseSearchCriteria reads search parameters from the query string. Only
// type-level problems (non-numeric numbers, bad booleans) are reported here;
// semantic validation happens in the domain layer.
//
// include_connections defaults to true when absent.
func ParseSearchCriteria(c echo.Context) (domain.SearchCriteria, *ValidationErrors) {
	errs := &ValidationErrors{}
	criteria := domain.SearchCriteria{
		Origin:             c.QueryParam("origin"),
		Destination:        c.QueryParam("destination"),
		DepartureDate:      c.QueryParam("departure_date"),
		IncludeConnections: true,
	}

	if raw := c.QueryParam("include_connections"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs.Add("include_connections", "must be a boolean")
		} else {
			criteria.IncludeConnections = v
		}
	}
	criteria.MaxLayoverHours = parseIntParam(c, "max_layover_hours", errs)
	criteria.MinSeats = parseIntParam(c, "min_seats", errs)
	criteria.MaxResults = parseIntParam(c, "max_results", errs)
	criteria.MinPrice = parseFloatParam(c, "min_price", errs)
	criteria.MaxPrice = parseFloatParam(c, "max_price", errs)

	if errs.HasErrors() {
		return criteria, errs
	}
	return criteria, nil
}

func parseIntParam(c echo.Context, name string, errs *ValidationErrors) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(name, "must be an integer")
		return nil
	}
	return &v
}

func parseFloatParam(c echo.Context, name string, errs *ValidationErrors) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs.Add(name, "must be a number")
		return nil
	}
	return &v
}

// parseLimitParam reads an optional positive limit with a default.
func parseLimitParam(c echo.Context, name string, def, max int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	if v > max {
		v = max
	}
	return v, nil
}
