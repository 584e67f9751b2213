package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// CatalogHandler handles the reference-data endpoints: airlines, airports,
// and passenger profiles.
type CatalogHandler struct {
	airlines   domain.AirlineStore
	airports   domain.AirportStore
	passengers domain.PassengerStore
}

// NewCatalogHandler creates a new CatalogHandler backed by the given stores.
func NewCatalogHandler(airlines domain.AirlineStore, airports domain.AirportStore, passengers domain.PassengerStore) *CatalogHandler {
	return &CatalogHandler{
		airlines:   airlines,
		airports:   airports,
		passengers: passengers,
	}
}

// ListAirlines handles GET /api/v1/airlines
func (h *CatalogHandler) ListAirlines(c echo.Context) error {
	airlines, err := h.airlines.ListAirlines(c.Request().Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	if airlines == nil {
		airlines = []domain.Airline{}
	}
	return response.OK(c, airlines)
}

// GetAirline handles GET /api/v1/airlines/:id
func (h *CatalogHandler) GetAirline(c echo.Context) error {
	airline, err := h.airlines.GetAirline(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, airline)
}

// CreateAirline handles POST /api/v1/airlines
func (h *CatalogHandler) CreateAirline(c echo.Context) error {
	var airline domain.Airline
	if err := c.Bind(&airline); err != nil {
		return response.InvalidRequestBody(c)
	}
	airline.Normalize()
	if err := airline.Validate(); err != nil {
		return handleDomainError(c, err)
	}
	if err := h.airlines.CreateAirline(c.Request().Context(), &airline); err != nil {
		return handleDomainError(c, err)
	}
	return response.Created(c, &airline)
}

// UpdateAirline handles PUT /api/v1/airlines/:id
func (h *CatalogHandler) UpdateAirline(c echo.Context) error {
	var airline domain.Airline
	if err := c.Bind(&airline); err != nil {
		return response.InvalidRequestBody(c)
	}
	airline.ID = c.Param("id")
	airline.Normalize()
	if err := airline.Validate(); err != nil {
		return handleDomainError(c, err)
	}
	if err := h.airlines.UpdateAirline(c.Request().Context(), &airline); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, &airline)
}

// DeleteAirline handles DELETE /api/v1/airlines/:id
func (h *CatalogHandler) DeleteAirline(c echo.Context) error {
	if err := h.airlines.DeleteAirline(c.Request().Context(), c.Param("id")); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}

// ListAirports handles GET /api/v1/airports
// An optional q parameter switches to a name/city/code search.
func (h *CatalogHandler) ListAirports(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		airports []domain.Airport
		err      error
	)
	if q := c.QueryParam("q"); q != "" {
		airports, err = h.airports.SearchAirports(ctx, q)
	} else {
		airports, err = h.airports.ListAirports(ctx)
	}
	if err != nil {
		return handleDomainError(c, err)
	}
	if airports == nil {
		airports = []domain.Airport{}
	}
	return response.OK(c, airports)
}

// GetAirport handles GET /api/v1/airports/:id
// An ID that looks like an IATA code is resolved by code first.
func (h *CatalogHandler) GetAirport(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if len(id) == 3 {
		if airport, err := h.airports.GetAirportByCode(ctx, id); err == nil {
			return response.OK(c, airport)
		}
	}
	airport, err := h.airports.GetAirport(ctx, id)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, airport)
}

// CreateAirport handles POST /api/v1/airports
func (h *CatalogHandler) CreateAirport(c echo.Context) error {
	var airport domain.Airport
	if err := c.Bind(&airport); err != nil {
		return response.InvalidRequestBody(c)
	}
	airport.Normalize()
	if err := airport.Validate(); err != nil {
		return handleDomainError(c, err)
	}
	if err := h.airports.CreateAirport(c.Request().Context(), &airport); err != nil {
		return handleDomainError(c, err)
	}
	return response.Created(c, &airport)
}

// UpdateAirport handles PUT /api/v1/airports/:id
func (h *CatalogHandler) UpdateAirport(c echo.Context) error {
	var airport domain.Airport
	if err := c.Bind(&airport); err != nil {
		return response.InvalidRequestBody(c)
	}
	airport.ID = c.Param("id")
	airport.Normalize()
	if err := airport.Validate(); err != nil {
		return handleDomainError(c, err)
	}
	if err := h.airports.UpdateAirport(c.Request().Context(), &airport); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, &airport)
}

// DeleteAirport handles DELETE /api/v1/airports/:id
func (h *CatalogHandler) DeleteAirport(c echo.Context) error {
	if err := h.airports.DeleteAirport(c.Request().Context(), c.Param("id")); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}

// ListPassengers handles GET /api/v1/passengers
// Non-admins only see their own passenger profiles.
func (h *CatalogHandler) ListPassengers(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		passengers []domain.Passenger
		err        error
	)
	if middleware.GetUserRole(c) == domain.RoleAdmin {
		passengers, err = h.passengers.ListPassengers(ctx)
	} else {
		passengers, err = h.passengers.ListPassengersByUser(ctx, middleware.GetUserID(c))
	}
	if err != nil {
		return handleDomainError(c, err)
	}
	if passengers == nil {
		passengers = []domain.Passenger{}
	}
	return response.OK(c, passengers)
}

// GetPassenger handles GET /api/v1/passengers/:id
func (h *CatalogHandler) GetPassenger(c echo.Context) error {
	p, err := h.passengers.GetPassenger(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if !h.canAccessPassenger(c, p) {
		return response.NotFound(c, "passenger not found")
	}
	return response.OK(c, p)
}

// CreatePassenger handles POST /api/v1/passengers
func (h *CatalogHandler) CreatePassenger(c echo.Context) error {
	var p domain.Passenger
	if err := c.Bind(&p); err != nil {
		return response.InvalidRequestBody(c)
	}
	p.UserID = middleware.GetUserID(c)
	if err := p.Validate(); err != nil {
		return handleDomainError(c, err)
	}
	if err := h.passengers.CreatePassenger(c.Request().Context(), &p); err != nil {
		return handleDomainError(c, err)
	}
	return response.Created(c, &p)
}

// UpdatePassenger handles PUT /api/v1/passengers/:id
func (h *CatalogHandler) UpdatePassenger(c echo.Context) error {
	existing, err := h.passengers.GetPassenger(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if !h.canAccessPassenger(c, existing) {
		return response.NotFound(c, "passenger not found")
	}

	var p domain.Passenger
	if err := c.Bind(&p); err != nil {
		return response.InvalidRequestBody(c)
	}
	p.ID = existing.ID
	p.UserID = existing.UserID
	p.CreatedAt = existing.CreatedAt
	if err := p.Validate(); err != nil {
		return handleDomainError(c, err)
	}
	if err := h.passengers.UpdatePassenger(c.Request().Context(), &p); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, &p)
}

// DeletePassenger handles DELETE /api/v1/passengers/:id
func (h *CatalogHandler) DeletePassenger(c echo.Context) error {
	existing, err := h.passengers.GetPassenger(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if !h.canAccessPassenger(c, existing) {
		return response.NotFound(c, "passenger not found")
	}
	if err := h.passengers.DeletePassenger(c.Request().Context(), existing.ID); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}

func (h *CatalogHandler) canAccessPassenger(c echo.Context, p *domain.Passenger) bool {
	if middleware.GetUserRole(c) == domain.RoleAdmin {
		return true
	}
	return p.UserID == middleware.GetUserID(c)
}
