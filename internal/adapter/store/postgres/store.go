// Package postgres implements the persistence ports on PostgreSQL via
// database/sql and lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/flight-booking/flight-booking-backend/internal/config"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-backend/internal/infrastructure/retry"
)

// Store implements every persistence port against a shared *sql.DB pool.
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

// Open connects to PostgreSQL, retrying while the database comes up, and
// applies the schema. The returned Store owns the pool; call Close on
// shutdown.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}

	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnTimeout)

	err = retry.Do(ctx, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
		defer cancel()
		return db.PingContext(pingCtx)
	}, retry.StoreConnectConfig)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping: %v", domain.ErrStoreUnavailable, err)
	}

	store := &Store{db: db, log: log}
	if err := store.applySchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Int("max_open_conns", cfg.MaxOpenConns).Msg("Connected to PostgreSQL")
	return store, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// storeErr wraps driver failures so callers can match ErrStoreUnavailable.
// sql.ErrNoRows is translated by the individual queries, never here.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}

// Compile-time port checks.
var (
	_ domain.FlightStore    = (*Store)(nil)
	_ domain.UserStore      = (*Store)(nil)
	_ domain.PassengerStore = (*Store)(nil)
	_ domain.AirlineStore   = (*Store)(nil)
	_ domain.AirportStore   = (*Store)(nil)
	_ domain.BookingStore   = (*Store)(nil)
	_ domain.PaymentStore   = (*Store)(nil)
)
