package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// maxRouteLimit caps the popular-routes listing.
const maxRouteLimit = 50

// FlightHandler handles flight management endpoints.
type FlightHandler struct {
	flights domain.FlightStore
}

// NewFlightHandler creates a new FlightHandler backed by the given store.
func NewFlightHandler(flights domain.FlightStore) *FlightHandler {
	return &FlightHandler{
		flights: flights,
	}
}

// List handles GET /api/v1/flights
//
// @Summary List flights
// @Tags flights
// @Produce json
// @Param origin query string false "Filter by origin IATA code"
// @Param destination query string false "Filter by destination IATA code"
// @Success 200 {array} domain.Flight
// @Router /api/v1/flights [get]
func (h *FlightHandler) List(c echo.Context) error {
	flights, err := h.flights.FindFlights(c.Request().Context(), domain.FlightQuery{
		Origin:      c.QueryParam("origin"),
		Destination: c.QueryParam("destination"),
		AirlineID:   c.QueryParam("airline_id"),
	})
	if err != nil {
		return handleDomainError(c, err)
	}
	if flights == nil {
		flights = []domain.Flight{}
	}
	return response.OK(c, flights)
}

// Get handles GET /api/v1/flights/:id
//
// @Summary Get a flight
// @Tags flights
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} domain.Flight
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/flights/{id} [get]
func (h *FlightHandler) Get(c echo.Context) error {
	flight, err := h.flights.GetFlight(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, flight)
}

// Create handles POST /api/v1/flights
//
// @Summary Create a flight
// @Tags flights
// @Accept json
// @Produce json
// @Param request body domain.Flight true "Flight"
// @Success 201 {object} domain.Flight
// @Failure 400 {object} response.ErrorDetail
// @Failure 409 {object} response.ErrorDetail
// @Router /api/v1/flights [post]
func (h *FlightHandler) Create(c echo.Context) error {
	var flight domain.Flight
	if err := c.Bind(&flight); err != nil {
		return response.InvalidRequestBody(c)
	}
	flight.Normalize()
	if flight.Status == "" {
		flight.Status = domain.FlightScheduled
	}
	if err := flight.Validate(); err != nil {
		return handleDomainError(c, err)
	}
	if err := h.flights.CreateFlight(c.Request().Context(), &flight); err != nil {
		return handleDomainError(c, err)
	}
	return response.Created(c, &flight)
}

// Update handles PUT /api/v1/flights/:id
//
// @Summary Update a flight
// @Tags flights
// @Accept json
// @Produce json
// @Param id path string true "Flight ID"
// @Param request body domain.Flight true "Flight"
// @Success 200 {object} domain.Flight
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/flights/{id} [put]
func (h *FlightHandler) Update(c echo.Context) error {
	var flight domain.Flight
	if err := c.Bind(&flight); err != nil {
		return response.InvalidRequestBody(c)
	}
	flight.ID = c.Param("id")
	flight.Normalize()
	if err := flight.Validate(); err != nil {
		return handleDomainError(c, err)
	}
	if err := h.flights.UpdateFlight(c.Request().Context(), &flight); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, &flight)
}

// Delete handles DELETE /api/v1/flights/:id
//
// @Summary Delete a flight
// @Tags flights
// @Param id path string true "Flight ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/flights/{id} [delete]
func (h *FlightHandler) Delete(c echo.Context) error {
	if err := h.flights.DeleteFlight(c.Request().Context(), c.Param("id")); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}

// Destinations handles GET /api/v1/flights/available-destinations
//
// @Summary List reachable destinations from an origin
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Success 200 {object} DestinationsResponse
// @Failure 400 {object} response.ErrorDetail
// @Router /api/v1/flights/available-destinations [get]
func (h *FlightHandler) Destinations(c echo.Context) error {
	origin := c.QueryParam("origin")
	if origin == "" {
		return response.BadRequest(c, "origin is required")
	}

	destinations, err := h.flights.Destinations(c.Request().Context(), origin)
	if err != nil {
		return handleDomainError(c, err)
	}
	if destinations == nil {
		destinations = []string{}
	}
	return response.OK(c, &DestinationsResponse{
		Origin:       origin,
		Destinations: destinations,
	})
}

// PopularRoutes handles GET /api/v1/flights/popular-routes
//
// @Summary List routes by descending flight count
// @Tags flights
// @Produce json
// @Param limit query int false "Route cap (default 10, max 50)"
// @Success 200 {object} PopularRoutesResponse
// @Router /api/v1/flights/popular-routes [get]
func (h *FlightHandler) PopularRoutes(c echo.Context) error {
	limit, err := parseLimitParam(c, "limit", 10, maxRouteLimit)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	routes, err := h.flights.PopularRoutes(c.Request().Context(), limit)
	if err != nil {
		return handleDomainError(c, err)
	}
	if routes == nil {
		routes = []domain.RouteCount{}
	}
	return response.OK(c, &PopularRoutesResponse{Routes: routes})
}
