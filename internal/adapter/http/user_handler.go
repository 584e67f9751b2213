package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// UserHandler handles account management. Listing and deleting are admin
// operations; Me serves the authenticated account.
type UserHandler struct {
	users domain.UserStore
}

// NewUserHandler creates a new UserHandler backed by the given store.
func NewUserHandler(users domain.UserStore) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, user)
}

// List handles GET /api/v1/users
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return response.OK(c, users)
}

// Get handles GET /api/v1/users/:id
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, user)
}

// Update handles PUT /api/v1/users/:id
// Only profile fields are writable; email, password hash, and role are
// managed elsewhere.
func (h *UserHandler) Update(c echo.Context) error {
	existing, err := h.users.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleDomainError(c, err)
	}

	var patch struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
	}
	if err := c.Bind(&patch); err != nil {
		return response.InvalidRequestBody(c)
	}

	if patch.FirstName != "" {
		existing.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		existing.LastName = patch.LastName
	}
	if patch.Phone != "" {
		existing.Phone = patch.Phone
	}
	if err := existing.Validate(); err != nil {
		return handleDomainError(c, err)
	}
	if err := h.users.UpdateUser(c.Request().Context(), existing); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, existing)
}

// Delete handles DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}
