package domain

//go:generate mockgen -destination=mock_store.go -package=domain github.com/flight-booking/flight-booking-backend/internal/domain FlightStore,UserStore,BookingStore,PaymentStore

import (
	"context"
	"time"
)

// FlightQuery describes a filtered flight lookup. Zero-valued fields are not
// applied. String matching is exact and assumes codes were uppercased by the
// caller.
type FlightQuery struct {
	// Origin restricts to flights departing from this airport code
	Origin string

	// Destination restricts to flights arriving at this airport code
	Destination string

	// NotDestination excludes flights arriving at this airport code.
	// Used to select genuine intermediate stops.
	NotDestination string

	// ExcludeID excludes a single flight record; a leg cannot connect to
	// itself.
	ExcludeID string

	// AirlineID restricts to flights operated by this airline
	AirlineID string

	// NotStatuses excludes flights in any of these statuses
	NotStatuses []FlightStatus

	// SeatsGreaterThan keeps flights with available_seats strictly above
	// this value when non-nil
	SeatsGreaterThan *int

	// DepartureFrom is the inclusive lower bound on departure time
	DepartureFrom *time.Time

	// DepartureTo is the upper bound on departure time. It is exclusive
	// unless DepartureToInclusive is set; a calendar-day window uses the
	// exclusive form, a layover window the inclusive one.
	DepartureTo *time.Time

	// DepartureToInclusive makes DepartureTo an inclusive bound
	DepartureToInclusive bool

	// Limit caps the number of returned flights; 0 means no cap
	Limit int
}

// RouteCount is a (origin, destination) pair with the number of flights
// serving it.
type RouteCount struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Flights     int    `json:"flights"`
}

// FlightStore is the persistence port for flight records. FindFlights is the
// only capability the search core depends on; the rest serves flight
// management. Implementations must be safe for concurrent readers.
type FlightStore interface {
	// FindFlights returns every flight matching the query. Results carry
	// no ordering guarantee; ordering is imposed by callers.
	FindFlights(ctx context.Context, q FlightQuery) ([]Flight, error)

	// GetFlight returns a flight by ID or ErrNotFound.
	GetFlight(ctx context.Context, id string) (*Flight, error)

	// CreateFlight inserts a flight, assigning ID when empty.
	// Returns ErrAlreadyExists on a duplicate flight number.
	CreateFlight(ctx context.Context, f *Flight) error

	// UpdateFlight replaces a flight record or returns ErrNotFound.
	UpdateFlight(ctx context.Context, f *Flight) error

	// AdjustSeats atomically changes a flight's available seat count by
	// delta: negative to reserve, positive to release. A reservation that
	// would drive the count negative fails with ErrInsufficientSeats and
	// leaves the flight untouched; a release never raises the count above
	// TotalSeats. Returns ErrNotFound for an unknown flight.
	AdjustSeats(ctx context.Context, id string, delta int) error

	// DeleteFlight removes a flight record or returns ErrNotFound.
	DeleteFlight(ctx context.Context, id string) error

	// Destinations lists the distinct airports reachable from an origin.
	Destinations(ctx context.Context, origin string) ([]string, error)

	// PopularRoutes lists routes ordered by descending flight count.
	PopularRoutes(ctx context.Context, limit int) ([]RouteCount, error)
}

// UserStore persists user accounts keyed by ID with unique emails.
type UserStore interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, u *User) error
	DeleteUser(ctx context.Context, id string) error
}

// PassengerStore persists passenger profiles.
type PassengerStore interface {
	CreatePassenger(ctx context.Context, p *Passenger) error
	GetPassenger(ctx context.Context, id string) (*Passenger, error)
	ListPassengers(ctx context.Context) ([]Passenger, error)
	ListPassengersByUser(ctx context.Context, userID string) ([]Passenger, error)
	UpdatePassenger(ctx context.Context, p *Passenger) error
	DeletePassenger(ctx context.Context, id string) error
}

// AirlineStore persists airlines with unique codes.
type AirlineStore interface {
	CreateAirline(ctx context.Context, a *Airline) error
	GetAirline(ctx context.Context, id string) (*Airline, error)
	ListAirlines(ctx context.Context) ([]Airline, error)
	UpdateAirline(ctx context.Context, a *Airline) error
	DeleteAirline(ctx context.Context, id string) error
}

// AirportStore persists airports with unique IATA codes.
type AirportStore interface {
	CreateAirport(ctx context.Context, a *Airport) error
	GetAirport(ctx context.Context, id string) (*Airport, error)
	GetAirportByCode(ctx context.Context, code string) (*Airport, error)
	ListAirports(ctx context.Context) ([]Airport, error)
	// SearchAirports matches the query against name, city, and code.
	SearchAirports(ctx context.Context, query string) ([]Airport, error)
	UpdateAirport(ctx context.Context, a *Airport) error
	DeleteAirport(ctx context.Context, id string) error
}

// BookingStore persists bookings with unique references.
type BookingStore interface {
	CreateBooking(ctx context.Context, b *Booking) error
	GetBooking(ctx context.Context, id string) (*Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]Booking, error)
	UpdateBooking(ctx context.Context, b *Booking) error
	DeleteBooking(ctx context.Context, id string) error
}

// PaymentStore persists payment records.
type PaymentStore interface {
	CreatePayment(ctx context.Context, p *Payment) error
	GetPayment(ctx context.Context, id string) (*Payment, error)
	GetPaymentByBooking(ctx context.Context, bookingID string) (*Payment, error)
	GetPaymentByTransaction(ctx context.Context, transactionID string) (*Payment, error)
	ListPayments(ctx context.Context) ([]Payment, error)
	UpdatePayment(ctx context.Context, p *Payment) error
}
