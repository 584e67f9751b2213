package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-backend/internal/usecase"
)

// SearchHandler handles itinerary search requests.
type SearchHandler struct {
	useCase usecase.SearchUseCase
}

// NewSearchHandler creates a new SearchHandler with the given use case.
func NewSearchHandler(uc usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{
		useCase: uc,
	}
}

// Search handles GET /api/v1/flights/search
//
// @Summary Search for itineraries
// @Description Returns direct and one-stop itineraries between two airports
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Param departure_date query string false "Departure day (YYYY-MM-DD)"
// @Param include_connections query bool false "Synthesize one-stop itineraries (default true)"
// @Param max_layover_hours query int false "Maximum layover in hours (1-24, default 6)"
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound"
// @Param min_seats query int false "Seats required on every segment (default 1)"
// @Param max_results query int false "Result cap (1-100, default 50)"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Storage unavailable"
// @Router /api/v1/flights/search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	criteria, parseErrs := ParseSearchCriteria(c)
	if parseErrs != nil {
		return response.ValidationError(c, parseErrs.ToMap())
	}

	results, err := h.useCase.Search(c.Request().Context(), criteria)
	if err != nil {
		return handleDomainError(c, err)
	}

	// Echo back the normalized criteria the search actually ran with.
	criteria.Normalize()
	return response.OK(c, NewSearchResponse(criteria, results))
}
