package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// Passenger, airline, and airport stores.

const passengerColumns = "id, user_id, first_name, last_name, date_of_birth, passport_number, nationality, created_at"

func scanPassenger(row rowScanner) (*domain.Passenger, error) {
	var p domain.Passenger
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.DateOfBirth,
		&p.PassportNumber, &p.Nationality, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePassenger implements domain.PassengerStore.CreatePassenger.
func (s *Store) CreatePassenger(ctx context.Context, p *domain.Passenger) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO passengers (`+passengerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.DateOfBirth, p.PassportNumber,
		p.Nationality, p.CreatedAt)
	if err != nil {
		return storeErr("create passenger", err)
	}
	return nil
}

// GetPassenger implements domain.PassengerStore.GetPassenger.
func (s *Store) GetPassenger(ctx context.Context, id string) (*domain.Passenger, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+passengerColumns+" FROM passengers WHERE id = $1", id)
	p, err := scanPassenger(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: passenger %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr("get passenger", err)
	}
	return p, nil
}

// ListPassengers implements domain.PassengerStore.ListPassengers.
func (s *Store) ListPassengers(ctx context.Context) ([]domain.Passenger, error) {
	return s.queryPassengers(ctx, "SELECT "+passengerColumns+" FROM passengers ORDER BY id")
}

// ListPassengersByUser implements domain.PassengerStore.ListPassengersByUser.
func (s *Store) ListPassengersByUser(ctx context.Context, userID string) ([]domain.Passenger, error) {
	return s.queryPassengers(ctx,
		"SELECT "+passengerColumns+" FROM passengers WHERE user_id = $1 ORDER BY id", userID)
}

func (s *Store) queryPassengers(ctx context.Context, query string, args ...any) ([]domain.Passenger, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list passengers", err)
	}
	defer rows.Close()

	var passengers []domain.Passenger
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, storeErr("scan passenger", err)
		}
		passengers = append(passengers, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list passengers", err)
	}
	return passengers, nil
}

// UpdatePassenger implements domain.PassengerStore.UpdatePassenger.
func (s *Store) UpdatePassenger(ctx context.Context, p *domain.Passenger) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE passengers SET first_name = $2, last_name = $3, date_of_birth = $4,
			passport_number = $5, nationality = $6
		 WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.PassportNumber, p.Nationality)
	if err != nil {
		return storeErr("update passenger", err)
	}
	return requireRow(res, "passenger", p.ID)
}

// DeletePassenger implements domain.PassengerStore.DeletePassenger.
func (s *Store) DeletePassenger(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM passengers WHERE id = $1", id)
	if err != nil {
		return storeErr("delete passenger", err)
	}
	return requireRow(res, "passenger", id)
}

const airlineColumns = "id, name, code, logo_url, country"

func scanAirline(row rowScanner) (*domain.Airline, error) {
	var a domain.Airline
	if err := row.Scan(&a.ID, &a.Name, &a.Code, &a.LogoURL, &a.Country); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAirline implements domain.AirlineStore.CreateAirline.
func (s *Store) CreateAirline(ctx context.Context, a *domain.Airline) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO airlines (`+airlineColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Name, a.Code, a.LogoURL, a.Country)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: airline code %s", domain.ErrAlreadyExists, a.Code)
	}
	if err != nil {
		return storeErr("create airline", err)
	}
	return nil
}

// GetAirline implements domain.AirlineStore.GetAirline.
func (s *Store) GetAirline(ctx context.Context, id string) (*domain.Airline, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+airlineColumns+" FROM airlines WHERE id = $1", id)
	a, err := scanAirline(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: airline %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr("get airline", err)
	}
	return a, nil
}

// ListAirlines implements domain.AirlineStore.ListAirlines.
func (s *Store) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+airlineColumns+" FROM airlines ORDER BY code")
	if err != nil {
		return nil, storeErr("list airlines", err)
	}
	defer rows.Close()

	var airlines []domain.Airline
	for rows.Next() {
		a, err := scanAirline(rows)
		if err != nil {
			return nil, storeErr("scan airline", err)
		}
		airlines = append(airlines, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list airlines", err)
	}
	return airlines, nil
}

// UpdateAirline implements domain.AirlineStore.UpdateAirline.
func (s *Store) UpdateAirline(ctx context.Context, a *domain.Airline) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE airlines SET name = $2, code = $3, logo_url = $4, country = $5 WHERE id = $1`,
		a.ID, a.Name, a.Code, a.LogoURL, a.Country)
	if err != nil {
		return storeErr("update airline", err)
	}
	return requireRow(res, "airline", a.ID)
}

// DeleteAirline implements domain.AirlineStore.DeleteAirline.
func (s *Store) DeleteAirline(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM airlines WHERE id = $1", id)
	if err != nil {
		return storeErr("delete airline", err)
	}
	return requireRow(res, "airline", id)
}

const airportColumns = "id, code, name, city, country, timezone"

func scanAirport(row rowScanner) (*domain.Airport, error) {
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Country, &a.Timezone); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAirport implements domain.AirportStore.CreateAirport.
func (s *Store) CreateAirport(ctx context.Context, a *domain.Airport) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO airports (`+airportColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Code, a.Name, a.City, a.Country, a.Timezone)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: airport code %s", domain.ErrAlreadyExists, a.Code)
	}
	if err != nil {
		return storeErr("create airport", err)
	}
	return nil
}

// GetAirport implements domain.AirportStore.GetAirport.
func (s *Store) GetAirport(ctx context.Context, id string) (*domain.Airport, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+airportColumns+" FROM airports WHERE id = $1", id)
	a, err := scanAirport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: airport %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr("get airport", err)
	}
	return a, nil
}

// GetAirportByCode implements domain.AirportStore.GetAirportByCode.
func (s *Store) GetAirportByCode(ctx context.Context, code string) (*domain.Airport, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+airportColumns+" FROM airports WHERE code = $1", code)
	a, err := scanAirport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: airport with code %s", domain.ErrNotFound, code)
	}
	if err != nil {
		return nil, storeErr("get airport by code", err)
	}
	return a, nil
}

// ListAirports implements domain.AirportStore.ListAirports.
func (s *Store) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.queryAirports(ctx, "SELECT "+airportColumns+" FROM airports ORDER BY code")
}

// SearchAirports implements domain.AirportStore.SearchAirports.
func (s *Store) SearchAirports(ctx context.Context, query string) ([]domain.Airport, error) {
	pattern := "%" + query + "%"
	return s.queryAirports(ctx,
		`SELECT `+airportColumns+` FROM airports
		 WHERE name ILIKE $1 OR city ILIKE $1 OR code ILIKE $1
		 ORDER BY code`, pattern)
}

func (s *Store) queryAirports(ctx context.Context, query string, args ...any) ([]domain.Airport, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list airports", err)
	}
	defer rows.Close()

	var airports []domain.Airport
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, storeErr("scan airport", err)
		}
		airports = append(airports, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list airports", err)
	}
	return airports, nil
}

// UpdateAirport implements domain.AirportStore.UpdateAirport.
func (s *Store) UpdateAirport(ctx context.Context, a *domain.Airport) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE airports SET code = $2, name = $3, city = $4, country = $5, timezone = $6
		 WHERE id = $1`,
		a.ID, a.Code, a.Name, a.City, a.Country, a.Timezone)
	if err != nil {
		return storeErr("update airport", err)
	}
	return requireRow(res, "airport", a.ID)
}

// DeleteAirport implements domain.AirportStore.DeleteAirport.
func (s *Store) DeleteAirport(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM airports WHERE id = $1", id)
	if err != nil {
		return storeErr("delete airport", err)
	}
	return requireRow(res, "airport", id)
}
