package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/internal/usecase"
)

// BookingHandler handles reservation endpoints. All routes require an
// authenticated user; non-admins only see their own bookings.
type BookingHandler struct {
	useCase usecase.BookingUseCase
}

// NewBookingHandler creates a new BookingHandler with the given use case.
func NewBookingHandler(uc usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		useCase: uc,
	}
}

// Create handles POST /api/v1/bookings
//
// @Summary Reserve seats on a flight
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body usecase.CreateBookingRequest true "Booking"
// @Success 201 {object} domain.Booking
// @Failure 400 {object} response.ErrorDetail
// @Failure 409 {object} response.ErrorDetail "Insufficient seats"
// @Router /api/v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req usecase.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	// Bookings are always created for the authenticated user.
	req.UserID = middleware.GetUserID(c)

	booking, err := h.useCase.CreateBooking(c.Request().Context(), req)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Created(c, booking)
}

// Get handles GET /api/v1/bookings/:id
//
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} domain.Booking
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.useCase.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if !h.canAccess(c, booking) {
		return response.NotFound(c, "booking not found")
	}
	return response.OK(c, booking)
}

// List handles GET /api/v1/bookings
//
// @Summary List bookings for the authenticated user (all bookings for admins)
// @Tags bookings
// @Produce json
// @Success 200 {array} domain.Booking
// @Router /api/v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if middleware.GetUserRole(c) == domain.RoleAdmin {
		userID = c.QueryParam("user_id")
	}

	bookings, err := h.useCase.ListBookings(c.Request().Context(), userID)
	if err != nil {
		return handleDomainError(c, err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return response.OK(c, bookings)
}

// Cancel handles POST /api/v1/bookings/:id/cancel
//
// @Summary Cancel a booking and release its seats
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} domain.Booking
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	booking, err := h.useCase.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if !h.canAccess(c, booking) {
		return response.NotFound(c, "booking not found")
	}

	cancelled, err := h.useCase.CancelBooking(c.Request().Context(), booking.ID)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, cancelled)
}

// canAccess reports whether the authenticated user may see the booking.
// Ownership failures read as not-found so booking IDs are not probeable.
func (h *BookingHandler) canAccess(c echo.Context, booking *domain.Booking) bool {
	if middleware.GetUserRole(c) == domain.RoleAdmin {
		return true
	}
	return booking.UserID == middleware.GetUserID(c)
}
