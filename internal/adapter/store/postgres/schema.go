package postgres

import "context"

// schema is applied idempotently at startup. Indexes mirror the query shapes
// of the search core: route lookups by (origin, destination, departure_time)
// and first-leg scans by (origin, departure_time).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		phone         TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT 'customer',
		created_at    TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS passengers (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		first_name      TEXT NOT NULL,
		last_name       TEXT NOT NULL,
		date_of_birth   TIMESTAMPTZ NOT NULL,
		passport_number TEXT NOT NULL DEFAULT '',
		nationality     TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_passengers_user ON passengers (user_id)`,

	`CREATE TABLE IF NOT EXISTS airlines (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		code     TEXT NOT NULL UNIQUE,
		logo_url TEXT NOT NULL DEFAULT '',
		country  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS airports (
		id       TEXT PRIMARY KEY,
		code     TEXT NOT NULL UNIQUE,
		name     TEXT NOT NULL,
		city     TEXT NOT NULL,
		country  TEXT NOT NULL,
		timezone TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS flights (
		id              TEXT PRIMARY KEY,
		flight_number   TEXT NOT NULL UNIQUE,
		airline_id      TEXT NOT NULL,
		origin          TEXT NOT NULL,
		destination     TEXT NOT NULL,
		departure_time  TIMESTAMPTZ NOT NULL,
		arrival_time    TIMESTAMPTZ NOT NULL,
		price           DOUBLE PRECISION NOT NULL,
		available_seats INTEGER NOT NULL,
		total_seats     INTEGER NOT NULL,
		aircraft_type   TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'scheduled'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_flights_route_departure
		ON flights (origin, destination, departure_time)`,
	`CREATE INDEX IF NOT EXISTS idx_flights_origin_departure
		ON flights (origin, departure_time)`,
	`CREATE INDEX IF NOT EXISTS idx_flights_status ON flights (status)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id                TEXT PRIMARY KEY,
		booking_reference TEXT NOT NULL UNIQUE,
		user_id           TEXT NOT NULL,
		flight_id         TEXT NOT NULL,
		passenger_ids     TEXT[] NOT NULL DEFAULT '{}',
		seats             INTEGER NOT NULL,
		total_price       DOUBLE PRECISION NOT NULL,
		status            TEXT NOT NULL DEFAULT 'pending',
		payment_id        TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL,
		updated_at        TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id             TEXT PRIMARY KEY,
		booking_id     TEXT NOT NULL,
		amount         DOUBLE PRECISION NOT NULL,
		payment_method TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'pending',
		transaction_id TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_booking ON payments (booking_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_transaction ON payments (transaction_id)`,
}

func (s *Store) applySchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return storeErr("apply schema", err)
		}
	}
	return nil
}
