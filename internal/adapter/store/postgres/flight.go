package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

const flightColumns = `id, flight_number, airline_id, origin, destination,
	departure_time, arrival_time, price, available_seats, total_seats,
	aircraft_type, status`

// FindFlights implements domain.FlightStore.FindFlights by compiling the
// query into a WHERE clause. Results are ordered by departure time so output
// matches the memory adapter.
func (s *Store) FindFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Origin != "" {
		conds = append(conds, "origin = "+arg(q.Origin))
	}
	if q.Destination != "" {
		conds = append(conds, "destination = "+arg(q.Destination))
	}
	if q.NotDestination != "" {
		conds = append(conds, "destination <> "+arg(q.NotDestination))
	}
	if q.ExcludeID != "" {
		conds = append(conds, "id <> "+arg(q.ExcludeID))
	}
	if q.AirlineID != "" {
		conds = append(conds, "airline_id = "+arg(q.AirlineID))
	}
	if len(q.NotStatuses) > 0 {
		statuses := make([]string, len(q.NotStatuses))
		for i, st := range q.NotStatuses {
			statuses[i] = string(st)
		}
		conds = append(conds, "status <> ALL("+arg(pq.Array(statuses))+")")
	}
	if q.SeatsGreaterThan != nil {
		conds = append(conds, "available_seats > "+arg(*q.SeatsGreaterThan))
	}
	if q.DepartureFrom != nil {
		conds = append(conds, "departure_time >= "+arg(*q.DepartureFrom))
	}
	if q.DepartureTo != nil {
		op := "<"
		if q.DepartureToInclusive {
			op = "<="
		}
		conds = append(conds, "departure_time "+op+" "+arg(*q.DepartureTo))
	}

	query := "SELECT " + flightColumns + " FROM flights"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY departure_time, id"
	if q.Limit > 0 {
		query += " LIMIT " + arg(q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("find flights", err)
	}
	defer rows.Close()

	var flights []domain.Flight
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, storeErr("scan flight", err)
		}
		flights = append(flights, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("find flights", err)
	}
	return flights, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlight(row rowScanner) (*domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.FlightNumber, &f.AirlineID, &f.Origin, &f.Destination,
		&f.DepartureTime, &f.ArrivalTime, &f.Price, &f.AvailableSeats, &f.TotalSeats,
		&f.AircraftType, &f.Status)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetFlight implements domain.FlightStore.GetFlight.
func (s *Store) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+flightColumns+" FROM flights WHERE id = $1", id)
	f, err := scanFlight(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: flight %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr("get flight", err)
	}
	return f, nil
}

// CreateFlight implements domain.FlightStore.CreateFlight.
func (s *Store) CreateFlight(ctx context.Context, f *domain.Flight) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO flights (`+flightColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		f.ID, f.FlightNumber, f.AirlineID, f.Origin, f.Destination,
		f.DepartureTime, f.ArrivalTime, f.Price, f.AvailableSeats, f.TotalSeats,
		f.AircraftType, f.Status)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: flight number %s", domain.ErrAlreadyExists, f.FlightNumber)
	}
	if err != nil {
		return storeErr("create flight", err)
	}
	return nil
}

// UpdateFlight implements domain.FlightStore.UpdateFlight.
func (s *Store) UpdateFlight(ctx context.Context, f *domain.Flight) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE flights SET flight_number = $2, airline_id = $3, origin = $4,
			destination = $5, departure_time = $6, arrival_time = $7, price = $8,
			available_seats = $9, total_seats = $10, aircraft_type = $11, status = $12
		 WHERE id = $1`,
		f.ID, f.FlightNumber, f.AirlineID, f.Origin, f.Destination,
		f.DepartureTime, f.ArrivalTime, f.Price, f.AvailableSeats, f.TotalSeats,
		f.AircraftType, f.Status)
	if err != nil {
		return storeErr("update flight", err)
	}
	return requireRow(res, "flight", f.ID)
}

// AdjustSeats implements domain.FlightStore.AdjustSeats. The guard lives in
// the WHERE clause, so two concurrent reservations for the last seats race on
// a single conditional UPDATE and only one can win.
func (s *Store) AdjustSeats(ctx context.Context, id string, delta int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE flights
		 SET available_seats = LEAST(total_seats, available_seats + $2)
		 WHERE id = $1 AND available_seats + $2 >= 0`,
		id, delta)
	if err != nil {
		return storeErr("adjust seats", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if n > 0 {
		return nil
	}

	// Zero rows means either an unknown flight or a failed guard; one more
	// read tells them apart.
	f, err := s.GetFlight(ctx, id)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: flight %s has %d seats, %d requested",
		domain.ErrInsufficientSeats, id, f.AvailableSeats, -delta)
}

// DeleteFlight implements domain.FlightStore.DeleteFlight.
func (s *Store) DeleteFlight(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM flights WHERE id = $1", id)
	if err != nil {
		return storeErr("delete flight", err)
	}
	return requireRow(res, "flight", id)
}

// Destinations implements domain.FlightStore.Destinations.
func (s *Store) Destinations(ctx context.Context, origin string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT destination FROM flights WHERE origin = $1 ORDER BY destination", origin)
	if err != nil {
		return nil, storeErr("destinations", err)
	}
	defer rows.Close()

	var destinations []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, storeErr("scan destination", err)
		}
		destinations = append(destinations, code)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("destinations", err)
	}
	return destinations, nil
}

// PopularRoutes implements domain.FlightStore.PopularRoutes.
func (s *Store) PopularRoutes(ctx context.Context, limit int) ([]domain.RouteCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT origin, destination, COUNT(*) AS flights
		 FROM flights
		 GROUP BY origin, destination
		 ORDER BY flights DESC, origin, destination
		 LIMIT $1`, limit)
	if err != nil {
		return nil, storeErr("popular routes", err)
	}
	defer rows.Close()

	var routes []domain.RouteCount
	for rows.Next() {
		var rc domain.RouteCount
		if err := rows.Scan(&rc.Origin, &rc.Destination, &rc.Flights); err != nil {
			return nil, storeErr("scan route", err)
		}
		routes = append(routes, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("popular routes", err)
	}
	return routes, nil
}

// requireRow translates a zero-row write into ErrNotFound.
func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, entity, id)
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
