package domain

import "errors"

// Sentinel errors shared across the application. Callers wrap these with
// fmt.Errorf("%w: ...") to add context; HTTP handlers map them to status
// codes with errors.Is.
var (
	// ErrInvalidCriteria indicates search criteria that cannot be executed
	// (malformed date, contradictory bounds, same origin and destination).
	ErrInvalidCriteria = errors.New("invalid search criteria")

	// ErrInvalidEntity indicates an entity that violates its invariants.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrNotFound indicates a lookup for a record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness violation (duplicate email,
	// flight number, airline code, booking reference).
	ErrAlreadyExists = errors.New("already exists")

	// ErrStoreUnavailable indicates a transient backing-store failure.
	// It is not retried by the callers that receive it.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnauthorized indicates failed authentication or missing permission.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInsufficientSeats indicates a booking asking for more seats than
	// the flight has available.
	ErrInsufficientSeats = errors.New("insufficient seats")

	// ErrPaymentDeclined indicates the payment gateway rejected a charge.
	ErrPaymentDeclined = errors.New("payment declined")
)
