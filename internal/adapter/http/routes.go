// Package http provides the HTTP handler layer for the booking API.
package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-backend/internal/usecase"
)

// Handlers bundles every handler for route registration.
type Handlers struct {
	Health  *HealthHandler
	Search  *SearchHandler
	Flight  *FlightHandler
	Auth    *AuthHandler
	User    *UserHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Catalog *CatalogHandler
}

// RegisterRoutes registers all booking API routes. Search and reference data
// are public; bookings, payments, and profiles require authentication;
// catalog and flight writes require the admin role.
func RegisterRoutes(e *echo.Echo, h *Handlers, auth usecase.AuthUseCase) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health.Health)

	authed := middleware.Authenticate(auth)
	admin := middleware.RequireAdmin()

	// API v1 group
	api := e.Group("/api/v1")

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	flights := api.Group("/flights")
	flights.GET("/search", h.Search.Search)
	flights.GET("/available-destinations", h.Flight.Destinations)
	flights.GET("/popular-routes", h.Flight.PopularRoutes)
	flights.GET("", h.Flight.List)
	flights.GET("/:id", h.Flight.Get)
	flights.POST("", h.Flight.Create, authed, admin)
	flights.PUT("/:id", h.Flight.Update, authed, admin)
	flights.DELETE("/:id", h.Flight.Delete, authed, admin)

	airlines := api.Group("/airlines")
	airlines.GET("", h.Catalog.ListAirlines)
	airlines.GET("/:id", h.Catalog.GetAirline)
	airlines.POST("", h.Catalog.CreateAirline, authed, admin)
	airlines.PUT("/:id", h.Catalog.UpdateAirline, authed, admin)
	airlines.DELETE("/:id", h.Catalog.DeleteAirline, authed, admin)

	airports := api.Group("/airports")
	airports.GET("", h.Catalog.ListAirports)
	airports.GET("/:id", h.Catalog.GetAirport)
	airports.POST("", h.Catalog.CreateAirport, authed, admin)
	airports.PUT("/:id", h.Catalog.UpdateAirport, authed, admin)
	airports.DELETE("/:id", h.Catalog.DeleteAirport, authed, admin)

	users := api.Group("/users", authed)
	users.GET("/me", h.User.Me)
	users.GET("", h.User.List, admin)
	users.GET("/:id", h.User.Get, admin)
	users.PUT("/:id", h.User.Update, admin)
	users.DELETE("/:id", h.User.Delete, admin)

	passengers := api.Group("/passengers", authed)
	passengers.GET("", h.Catalog.ListPassengers)
	passengers.GET("/:id", h.Catalog.GetPassenger)
	passengers.POST("", h.Catalog.CreatePassenger)
	passengers.PUT("/:id", h.Catalog.UpdatePassenger)
	passengers.DELETE("/:id", h.Catalog.DeletePassenger)

	bookings := api.Group("/bookings", authed)
	bookings.GET("", h.Booking.List)
	bookings.GET("/:id", h.Booking.Get)
	bookings.POST("", h.Booking.Create)
	bookings.POST("/:id/cancel", h.Booking.Cancel)

	payments := api.Group("/payments", authed)
	payments.GET("", h.Payment.List, admin)
	payments.GET("/booking/:id", h.Payment.GetByBooking)
	payments.GET("/:id", h.Payment.Get)
	payments.POST("", h.Payment.Process)
	payments.POST("/:id/refund", h.Payment.Refund)

	// Processor callbacks authenticate by signature, not bearer token.
	api.POST("/webhooks/payment", h.Payment.Webhook)
}
