package http

import (
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-backend/internal/adapter/payment"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/internal/usecase"
)

// PaymentHandler handles payment processing endpoints and the processor
// webhook.
type PaymentHandler struct {
	useCase  usecase.PaymentUseCase
	verifier *payment.WebhookVerifier
}

// NewPaymentHandler creates a new PaymentHandler with the given use case and
// webhook verifier.
func NewPaymentHandler(uc usecase.PaymentUseCase, verifier *payment.WebhookVerifier) *PaymentHandler {
	return &PaymentHandler{
		useCase:  uc,
		verifier: verifier,
	}
}

// Process handles POST /api/v1/payments
//
// @Summary Charge a pending booking
// @Tags payments
// @Accept json
// @Produce json
// @Param request body usecase.ProcessPaymentRequest true "Payment"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} response.ErrorDetail
// @Failure 402 {object} response.ErrorDetail "Charge declined"
// @Router /api/v1/payments [post]
func (h *PaymentHandler) Process(c echo.Context) error {
	var req usecase.ProcessPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.useCase.ProcessPayment(c.Request().Context(), req)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Created(c, result)
}

// Get handles GET /api/v1/payments/:id
//
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.Payment
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	result, err := h.useCase.GetPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, result)
}

// GetByBooking handles GET /api/v1/payments/booking/:id
//
// @Summary Get the payment for a booking
// @Tags payments
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} domain.Payment
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/payments/booking/{id} [get]
func (h *PaymentHandler) GetByBooking(c echo.Context) error {
	result, err := h.useCase.GetPaymentByBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, result)
}

// List handles GET /api/v1/payments
//
// @Summary List payments
// @Tags payments
// @Produce json
// @Success 200 {array} domain.Payment
// @Router /api/v1/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.useCase.ListPayments(c.Request().Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return response.OK(c, payments)
}

// Refund handles POST /api/v1/payments/:id/refund
//
// @Summary Refund a completed payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.Payment
// @Failure 400 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/payments/{id}/refund [post]
func (h *PaymentHandler) Refund(c echo.Context) error {
	result, err := h.useCase.RefundPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, result)
}

// Webhook handles POST /api/v1/webhooks/payment
//
// The signature covers the raw body, so the body is read before decoding.
// Unverifiable requests are rejected before any state is touched.
//
// @Summary Receive processor webhook events
// @Tags payments
// @Accept json
// @Success 200
// @Failure 401 {object} response.ErrorDetail "Bad signature"
// @Router /api/v1/webhooks/payment [post]
func (h *PaymentHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	signature := c.Request().Header.Get(payment.SignatureHeader)
	if err := h.verifier.Verify(body, signature); err != nil {
		return handleDomainError(c, err)
	}

	var event usecase.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := h.useCase.HandleWebhookEvent(c.Request().Context(), event); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, map[string]string{"status": "received"})
}
