package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// handleDomainError maps domain errors to HTTP responses. Every handler
// funnels use case errors through here so status codes stay consistent.
func handleDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCriteria), errors.Is(err, domain.ErrInvalidEntity):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		return response.Conflict(c, err.Error())
	case errors.Is(err, domain.ErrInsufficientSeats):
		return response.InsufficientSeats(c, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return response.Unauthorized(c, err.Error())
	case errors.Is(err, domain.ErrPaymentDeclined):
		return response.PaymentDeclined(c, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	default:
		return response.InternalServerError(c)
	}
}

// HealthHandler serves liveness checks.
type HealthHandler struct{}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health handles GET /health
// Simple health check endpoint.
func (h *HealthHandler) Health(c echo.Context) error {
	return response.Health(c)
}
