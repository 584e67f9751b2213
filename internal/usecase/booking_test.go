package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/store/memory"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// seedFlight inserts a bookable flight and returns it.
func seedFlight(t *testing.T, store *memory.Store, opts ...testutil.FlightOption) domain.Flight {
	t.Helper()
	f := testutil.NewFlight(t, "f1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z", opts...)
	require.NoError(t, store.CreateFlight(context.Background(), &f))
	return f
}

func TestCreateBooking(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store, testutil.WithPrice(450), testutil.WithSeats(10))
	uc := NewBookingUseCase(store, store)

	booking, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:       "u1",
		FlightID:     flight.ID,
		PassengerIDs: []string{"p1", "p2"},
		Seats:        2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.True(t, strings.HasPrefix(booking.BookingReference, "BK-"))
	assert.Equal(t, domain.BookingPending, booking.Status)
	assert.Equal(t, float64(900), booking.TotalPrice)

	// Seats come off the flight immediately.
	updated, err := store.GetFlight(context.Background(), flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.AvailableSeats)
}

func TestCreateBooking_InsufficientSeats(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store, testutil.WithSeats(1))
	uc := NewBookingUseCase(store, store)

	_, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:   "u1",
		FlightID: flight.ID,
		Seats:    2,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientSeats))

	updated, err := store.GetFlight(context.Background(), flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.AvailableSeats, "a rejected booking must not touch seats")
}

// TestCreateBooking_ConcurrentRequestsCannotOversell races several bookings
// for the last seats on a flight: the conditional decrement in the store
// admits exactly one winner, and availability never goes negative.
func TestCreateBooking_ConcurrentRequestsCannotOversell(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store, testutil.WithSeats(2))
	uc := NewBookingUseCase(store, store)

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.CreateBooking(context.Background(), CreateBookingRequest{
				UserID:   "u1",
				FlightID: flight.ID,
				Seats:    2,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrInsufficientSeats))
	}
	assert.Equal(t, 1, succeeded, "only one booking can take the last seats")

	updated, err := store.GetFlight(context.Background(), flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.AvailableSeats)

	bookings, err := uc.ListBookings(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestCreateBooking_CancelledFlight(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store, testutil.WithStatus(domain.FlightCancelled))
	uc := NewBookingUseCase(store, store)

	_, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:   "u1",
		FlightID: flight.ID,
		Seats:    1,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidEntity))
}

func TestCreateBooking_FlightNotFound(t *testing.T) {
	uc := NewBookingUseCase(memory.New(), memory.New())

	_, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:   "u1",
		FlightID: "missing",
		Seats:    1,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreateBooking_PassengerCountMismatch(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store, testutil.WithSeats(10))
	uc := NewBookingUseCase(store, store)

	_, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:       "u1",
		FlightID:     flight.ID,
		PassengerIDs: []string{"p1"},
		Seats:        3,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidEntity))

	updated, err := store.GetFlight(context.Background(), flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.AvailableSeats)
}

// TestCreateBooking_RestoresSeatsOnInsertFailure verifies the compensating
// update: if the booking insert fails after seats were taken, the seats go
// back.
func TestCreateBooking_RestoresSeatsOnInsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flights := memory.New()
	flight := seedFlight(t, flights, testutil.WithSeats(10))

	insertErr := errors.New("unique_violation")
	bookings := domain.NewMockBookingStore(ctrl)
	bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(insertErr)

	uc := NewBookingUseCase(bookings, flights)
	_, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:   "u1",
		FlightID: flight.ID,
		Seats:    3,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, insertErr))

	updated, err := flights.GetFlight(context.Background(), flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.AvailableSeats, "failed insert must hand seats back")
}

func TestConfirmBooking(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store)
	uc := NewBookingUseCase(store, store)

	booking, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:   "u1",
		FlightID: flight.ID,
		Seats:    1,
	})
	require.NoError(t, err)

	confirmed, err := uc.ConfirmBooking(context.Background(), booking.ID, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, confirmed.Status)
	assert.Equal(t, "pay-1", confirmed.PaymentID)
}

func TestConfirmBooking_Cancelled(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store)
	uc := NewBookingUseCase(store, store)

	booking, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:   "u1",
		FlightID: flight.ID,
		Seats:    1,
	})
	require.NoError(t, err)
	_, err = uc.CancelBooking(context.Background(), booking.ID)
	require.NoError(t, err)

	_, err = uc.ConfirmBooking(context.Background(), booking.ID, "pay-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidEntity))
}

func TestCancelBooking(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store, testutil.WithSeats(10))
	uc := NewBookingUseCase(store, store)

	booking, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:   "u1",
		FlightID: flight.ID,
		Seats:    4,
	})
	require.NoError(t, err)

	cancelled, err := uc.CancelBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)

	updated, err := store.GetFlight(context.Background(), flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.AvailableSeats, "cancelling releases the seats")
}

// TestCancelBooking_Idempotent verifies that cancelling twice does not
// release seats twice.
func TestCancelBooking_Idempotent(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store, testutil.WithSeats(10))
	uc := NewBookingUseCase(store, store)

	booking, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:   "u1",
		FlightID: flight.ID,
		Seats:    4,
	})
	require.NoError(t, err)

	_, err = uc.CancelBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	again, err := uc.CancelBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, again.Status)

	updated, err := store.GetFlight(context.Background(), flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.AvailableSeats)
}

// TestCancelBooking_RestoreCappedAtCapacity verifies that a release never
// pushes availability past the aircraft capacity.
func TestCancelBooking_RestoreCappedAtCapacity(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store, testutil.WithSeats(10))
	uc := NewBookingUseCase(store, store)

	booking, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:   "u1",
		FlightID: flight.ID,
		Seats:    4,
	})
	require.NoError(t, err)

	// Availability was pushed to capacity out of band in the meantime.
	bumped, err := store.GetFlight(context.Background(), flight.ID)
	require.NoError(t, err)
	bumped.AvailableSeats = bumped.TotalSeats
	require.NoError(t, store.UpdateFlight(context.Background(), bumped))

	_, err = uc.CancelBooking(context.Background(), booking.ID)
	require.NoError(t, err)

	updated, err := store.GetFlight(context.Background(), flight.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.TotalSeats, updated.AvailableSeats)
}

func TestListBookings(t *testing.T) {
	store := memory.New()
	flight := seedFlight(t, store, testutil.WithSeats(50))
	uc := NewBookingUseCase(store, store)

	for _, userID := range []string{"u1", "u1", "u2"} {
		_, err := uc.CreateBooking(context.Background(), CreateBookingRequest{
			UserID:   userID,
			FlightID: flight.ID,
			Seats:    1,
		})
		require.NoError(t, err)
	}

	all, err := uc.ListBookings(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := uc.ListBookings(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, scoped, 2)
	for _, b := range scoped {
		assert.Equal(t, "u1", b.UserID)
	}
}
