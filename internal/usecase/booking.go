package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// CreateBookingRequest contains the fields required to reserve seats.
type CreateBookingRequest struct {
	UserID       string   `json:"user_id"`
	FlightID     string   `json:"flight_id"`
	PassengerIDs []string `json:"passenger_ids,omitempty"`
	Seats        int      `json:"seats"`
}

// BookingUseCase defines the interface for reservation management.
type BookingUseCase interface {
	// CreateBooking reserves seats on a flight. The booking starts
	// pending; seats are decremented immediately so concurrent bookings
	// cannot oversell the flight.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error)

	// GetBooking returns a booking by ID.
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)

	// ListBookings returns all bookings, optionally scoped to a user.
	ListBookings(ctx context.Context, userID string) ([]domain.Booking, error)

	// ConfirmBooking marks a booking confirmed after payment completes.
	ConfirmBooking(ctx context.Context, id, paymentID string) (*domain.Booking, error)

	// CancelBooking cancels a booking and releases its seats back to the
	// flight. Cancelling an already cancelled booking is a no-op.
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
}

type bookingUseCase struct {
	bookings domain.BookingStore
	flights  domain.FlightStore
	now      func() time.Time
}

// NewBookingUseCase creates a BookingUseCase backed by the given stores.
func NewBookingUseCase(bookings domain.BookingStore, flights domain.FlightStore) BookingUseCase {
	return &bookingUseCase{
		bookings: bookings,
		flights:  flights,
		now:      time.Now,
	}
}

func (uc *bookingUseCase) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	flight, err := uc.flights.GetFlight(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}
	if flight.Status == domain.FlightCancelled {
		return nil, fmt.Errorf("%w: flight %s is cancelled", domain.ErrInvalidEntity, flight.ID)
	}

	now := uc.now().UTC()
	booking := &domain.Booking{
		ID:               uuid.NewString(),
		BookingReference: newBookingReference(),
		UserID:           req.UserID,
		FlightID:         req.FlightID,
		PassengerIDs:     req.PassengerIDs,
		Seats:            req.Seats,
		TotalPrice:       flight.Price * float64(req.Seats),
		Status:           domain.BookingPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := booking.Validate(); err != nil {
		return nil, err
	}

	// The store decrements conditionally, so two requests racing for the
	// last seats cannot both succeed.
	if err := uc.flights.AdjustSeats(ctx, req.FlightID, -req.Seats); err != nil {
		return nil, err
	}
	if err := uc.bookings.CreateBooking(ctx, booking); err != nil {
		// Hand the seats back so a failed insert does not leak capacity.
		if restoreErr := uc.flights.AdjustSeats(ctx, req.FlightID, req.Seats); restoreErr != nil {
			return nil, errors.Join(err, restoreErr)
		}
		return nil, err
	}

	return booking, nil
}

func (uc *bookingUseCase) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return uc.bookings.GetBooking(ctx, id)
}

func (uc *bookingUseCase) ListBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	if userID != "" {
		return uc.bookings.ListBookingsByUser(ctx, userID)
	}
	return uc.bookings.ListBookings(ctx)
}

func (uc *bookingUseCase) ConfirmBooking(ctx context.Context, id, paymentID string) (*domain.Booking, error) {
	booking, err := uc.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingCancelled {
		return nil, fmt.Errorf("%w: booking %s is cancelled", domain.ErrInvalidEntity, id)
	}

	booking.Status = domain.BookingConfirmed
	booking.PaymentID = paymentID
	booking.UpdatedAt = uc.now().UTC()
	if err := uc.bookings.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (uc *bookingUseCase) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := uc.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingCancelled {
		return booking, nil
	}

	booking.Status = domain.BookingCancelled
	booking.UpdatedAt = uc.now().UTC()
	if err := uc.bookings.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	// AdjustSeats caps the release at the flight's capacity.
	if err := uc.flights.AdjustSeats(ctx, booking.FlightID, booking.Seats); err != nil {
		return nil, err
	}

	return booking, nil
}

// newBookingReference builds the human-facing reservation code.
func newBookingReference() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}
