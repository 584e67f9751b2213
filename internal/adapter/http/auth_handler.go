package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-backend/internal/usecase"
)

// AuthHandler handles account registration and login.
type AuthHandler struct {
	useCase usecase.AuthUseCase
}

// NewAuthHandler creates a new AuthHandler with the given use case.
func NewAuthHandler(uc usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
	}
}

// Register handles POST /api/v1/auth/register
//
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body usecase.RegisterRequest true "Registration"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.ErrorDetail
// @Failure 409 {object} response.ErrorDetail
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	user, token, err := h.useCase.Register(c.Request().Context(), req)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Created(c, &AuthResponse{Token: token, User: user})
}

// Login handles POST /api/v1/auth/login
//
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} response.ErrorDetail
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	user, token, err := h.useCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, &AuthResponse{Token: token, User: user})
}
