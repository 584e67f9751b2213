package http

import (
	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// SearchResponse is the payload returned by the itinerary search endpoint.
type SearchResponse struct {
	// Origin is the normalized origin airport code
	Origin string `json:"origin"`

	// Destination is the normalized destination airport code
	Destination string `json:"destination"`

	// DepartureDate echoes the requested day, if any
	DepartureDate string `json:"departure_date,omitempty"`

	// Count is the number of itineraries returned
	Count int `json:"count"`

	// Results holds the ranked itineraries
	Results []domain.Itinerary `json:"results"`
}

// NewSearchResponse builds the search payload. Results is never null in the
// serialized form, even when empty.
func NewSearchResponse(criteria domain.SearchCriteria, itineraries []domain.Itinerary) *SearchResponse {
	if itineraries == nil {
		itineraries = []domain.Itinerary{}
	}
	return &SearchResponse{
		Origin:        criteria.Origin,
		Destination:   criteria.Destination,
		DepartureDate: criteria.DepartureDate,
		Count:         len(itineraries),
		Results:       itineraries,
	}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DestinationsResponse lists reachable airports from an origin.
type DestinationsResponse struct {
	Origin       string   `json:"origin"`
	Destinations []string `json:"destinations"`
}

// PopularRoutesResponse lists routes by descending flight count.
type PopularRoutesResponse struct {
	Routes []domain.RouteCount `json:"routes"`
}
