// Package main is the entry point for the flight booking backend.
//
//	@title						Flight Booking API
//	@version					1.0.0
//	@description				A flight booking backend with direct and connecting itinerary search, reservations, and payments.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-booking/flight-booking-backend/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-booking/flight-booking-backend/docs"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/cache"
	bookinghttp "github.com/flight-booking/flight-booking-backend/internal/adapter/http"
	"github.com/flight-booking/flight-booking-backend/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-backend/internal/adapter/payment"
	"github.com/flight-booking/flight-booking-backend/internal/adapter/store/memory"
	"github.com/flight-booking/flight-booking-backend/internal/adapter/store/postgres"
	"github.com/flight-booking/flight-booking-backend/internal/config"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-backend/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// stores bundles every persistence port the application wires.
type stores struct {
	flights    domain.FlightStore
	users      domain.UserStore
	passengers domain.PassengerStore
	airlines   domain.AirlineStore
	airports   domain.AirportStore
	bookings   domain.BookingStore
	payments   domain.PaymentStore
	close      func() error
}

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-booking",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	ctx := context.Background()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open stores")
	}
	defer st.close()

	loc, err := timeutil.GetLocation(cfg.Search.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Search.Timezone).Msg("Invalid search timezone")
	}

	var itineraryCache usecase.ItineraryCache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedis(cfg.Redis, log.WithComponent("cache"))
		if err := redisCache.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
		}
		defer redisCache.Close()
		itineraryCache = redisCache
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("Itinerary cache enabled")
	}

	// Use cases
	searchUC := usecase.NewSearchUseCase(st.flights, &usecase.SearchConfig{
		Location:         loc,
		ConnectionFanout: cfg.Search.ConnectionFanout,
		Cache:            itineraryCache,
		Logger:           log.WithComponent("search"),
	})
	authUC := usecase.NewAuthUseCase(st.users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	bookingUC := usecase.NewBookingUseCase(st.bookings, st.flights)
	gateway := payment.NewSandboxGateway(cfg.Payment.APIKey, log.WithComponent("payments"))
	paymentUC := usecase.NewPaymentUseCase(st.payments, bookingUC, gateway, log.WithComponent("payments"))
	verifier := payment.NewWebhookVerifier(cfg.Payment.WebhookSecret)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	if cfg.Server.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
		e.Use(limiter.Middleware())
	}

	handlers := &bookinghttp.Handlers{
		Health:  bookinghttp.NewHealthHandler(),
		Search:  bookinghttp.NewSearchHandler(searchUC),
		Flight:  bookinghttp.NewFlightHandler(st.flights),
		Auth:    bookinghttp.NewAuthHandler(authUC),
		User:    bookinghttp.NewUserHandler(st.users),
		Booking: bookinghttp.NewBookingHandler(bookingUC),
		Payment: bookinghttp.NewPaymentHandler(paymentUC, verifier),
		Catalog: bookinghttp.NewCatalogHandler(st.airlines, st.airports, st.passengers),
	}
	bookinghttp.RegisterRoutes(e, handlers, authUC)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// openStores selects the persistence backend: PostgreSQL when a URL is
// configured, the in-memory store otherwise.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Database.URL == "" {
		log.Warn().Msg("DATABASE_URL not set; using in-memory store")
		mem := memory.New()
		return &stores{
			flights:    mem,
			users:      mem,
			passengers: mem,
			airlines:   mem,
			airports:   mem,
			bookings:   mem,
			payments:   mem,
			close:      func() error { return nil },
		}, nil
	}

	pg, err := postgres.Open(ctx, cfg.Database, log.WithComponent("postgres"))
	if err != nil {
		return nil, err
	}
	return &stores{
		flights:    pg,
		users:      pg,
		passengers: pg,
		airlines:   pg,
		airports:   pg,
		bookings:   pg,
		payments:   pg,
		close:      pg.Close,
	}, nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
