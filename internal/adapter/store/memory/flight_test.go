package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFlights(t *testing.T, s *Store, flights ...domain.Flight) {
	t.Helper()
	for i := range flights {
		f := flights[i]
		require.NoError(t, s.CreateFlight(context.Background(), &f))
	}
}

func findIDs(t *testing.T, s *Store, q domain.FlightQuery) []string {
	t.Helper()
	matches, err := s.FindFlights(context.Background(), q)
	require.NoError(t, err)
	ids := make([]string, len(matches))
	for i, f := range matches {
		ids[i] = f.ID
	}
	return ids
}

func TestFindFlights_RouteFilters(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "jfk-lax", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
		testutil.NewFlight(t, "jfk-ord", "JFK", "ORD", "2026-09-15T09:00:00Z", "2026-09-15T11:00:00Z"),
		testutil.NewFlight(t, "ord-lax", "ORD", "LAX", "2026-09-15T13:00:00Z", "2026-09-15T15:00:00Z"),
	)

	assert.Equal(t, []string{"jfk-lax", "jfk-ord"}, findIDs(t, s, domain.FlightQuery{Origin: "JFK"}))
	assert.Equal(t, []string{"jfk-lax"}, findIDs(t, s, domain.FlightQuery{Origin: "JFK", Destination: "LAX"}))
	assert.Equal(t, []string{"jfk-ord"}, findIDs(t, s, domain.FlightQuery{Origin: "JFK", NotDestination: "LAX"}))
	assert.Empty(t, findIDs(t, s, domain.FlightQuery{Origin: "SFO"}))
}

// TestFindFlights_ExcludeID verifies that a leg can be excluded by record ID,
// the guard that keeps a flight from connecting to itself.
func TestFindFlights_ExcludeID(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "a", "ORD", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T10:00:00Z"),
		testutil.NewFlight(t, "b", "ORD", "LAX", "2026-09-15T09:00:00Z", "2026-09-15T11:00:00Z"),
	)

	assert.Equal(t, []string{"b"}, findIDs(t, s, domain.FlightQuery{Origin: "ORD", ExcludeID: "a"}))
}

// TestFindFlights_DepartureBounds verifies the window semantics: the lower
// bound is always inclusive, the upper bound is exclusive unless the query
// says otherwise.
func TestFindFlights_DepartureBounds(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "before", "JFK", "LAX", "2026-09-15T07:59:00Z", "2026-09-15T14:00:00Z"),
		testutil.NewFlight(t, "at-from", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
		testutil.NewFlight(t, "inside", "JFK", "LAX", "2026-09-15T10:00:00Z", "2026-09-15T16:00:00Z"),
		testutil.NewFlight(t, "at-to", "JFK", "LAX", "2026-09-15T12:00:00Z", "2026-09-15T18:00:00Z"),
		testutil.NewFlight(t, "after", "JFK", "LAX", "2026-09-15T12:01:00Z", "2026-09-15T18:00:00Z"),
	)

	from := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	t.Run("exclusive upper bound", func(t *testing.T) {
		ids := findIDs(t, s, domain.FlightQuery{DepartureFrom: &from, DepartureTo: &to})
		assert.Equal(t, []string{"at-from", "inside"}, ids)
	})

	t.Run("inclusive upper bound", func(t *testing.T) {
		ids := findIDs(t, s, domain.FlightQuery{DepartureFrom: &from, DepartureTo: &to, DepartureToInclusive: true})
		assert.Equal(t, []string{"at-from", "inside", "at-to"}, ids)
	})
}

// TestFindFlights_SeatsGreaterThan verifies that the seat floor is strict: a
// flight with exactly the threshold is excluded.
func TestFindFlights_SeatsGreaterThan(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "none", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z", testutil.WithSeats(0)),
		testutil.NewFlight(t, "one", "JFK", "LAX", "2026-09-15T09:00:00Z", "2026-09-15T15:00:00Z", testutil.WithSeats(1)),
	)

	zero := 0
	assert.Equal(t, []string{"one"}, findIDs(t, s, domain.FlightQuery{SeatsGreaterThan: &zero}))
}

func TestFindFlights_NotStatuses(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "scheduled", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
		testutil.NewFlight(t, "cancelled", "JFK", "LAX", "2026-09-15T09:00:00Z", "2026-09-15T15:00:00Z",
			testutil.WithStatus(domain.FlightCancelled)),
		testutil.NewFlight(t, "delayed", "JFK", "LAX", "2026-09-15T10:00:00Z", "2026-09-15T16:00:00Z",
			testutil.WithStatus(domain.FlightDelayed)),
	)

	ids := findIDs(t, s, domain.FlightQuery{NotStatuses: []domain.FlightStatus{domain.FlightCancelled}})
	assert.Equal(t, []string{"scheduled", "delayed"}, ids)
}

// TestFindFlights_Ordering verifies deterministic ordering: departure time,
// then ID as the tiebreaker.
func TestFindFlights_Ordering(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "z-early", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
		testutil.NewFlight(t, "a-late", "JFK", "LAX", "2026-09-15T10:00:00Z", "2026-09-15T16:00:00Z"),
		testutil.NewFlight(t, "b-early", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
	)

	assert.Equal(t, []string{"b-early", "z-early", "a-late"}, findIDs(t, s, domain.FlightQuery{}))
}

func TestFindFlights_Limit(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "a", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
		testutil.NewFlight(t, "b", "JFK", "LAX", "2026-09-15T09:00:00Z", "2026-09-15T15:00:00Z"),
		testutil.NewFlight(t, "c", "JFK", "LAX", "2026-09-15T10:00:00Z", "2026-09-15T16:00:00Z"),
	)

	assert.Equal(t, []string{"a", "b"}, findIDs(t, s, domain.FlightQuery{Limit: 2}))
	assert.Len(t, findIDs(t, s, domain.FlightQuery{Limit: 0}), 3)
}

func TestCreateFlight_DuplicateNumber(t *testing.T) {
	s := New()
	first := testutil.NewFlight(t, "a", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z",
		testutil.WithFlightNumber("AA-100"))
	require.NoError(t, s.CreateFlight(context.Background(), &first))

	dup := testutil.NewFlight(t, "b", "JFK", "ORD", "2026-09-15T09:00:00Z", "2026-09-15T11:00:00Z",
		testutil.WithFlightNumber("AA-100"))
	err := s.CreateFlight(context.Background(), &dup)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAlreadyExists))
}

func TestCreateFlight_AssignsID(t *testing.T) {
	s := New()
	f := testutil.NewFlight(t, "", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z")
	require.NoError(t, s.CreateFlight(context.Background(), &f))
	assert.NotEmpty(t, f.ID)
}

func TestFlightLifecycle(t *testing.T) {
	s := New()
	f := testutil.NewFlight(t, "a", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z")
	require.NoError(t, s.CreateFlight(context.Background(), &f))

	got, err := s.GetFlight(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, f, *got)

	got.Price = 999
	require.NoError(t, s.UpdateFlight(context.Background(), got))
	updated, err := s.GetFlight(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, float64(999), updated.Price)

	require.NoError(t, s.DeleteFlight(context.Background(), "a"))
	_, err = s.GetFlight(context.Background(), "a")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.True(t, errors.Is(s.UpdateFlight(context.Background(), got), domain.ErrNotFound))
	assert.True(t, errors.Is(s.DeleteFlight(context.Background(), "a"), domain.ErrNotFound))
}

func TestAdjustSeats(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "a", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z", testutil.WithSeats(5)),
	)

	require.NoError(t, s.AdjustSeats(context.Background(), "a", -3))
	got, err := s.GetFlight(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableSeats)

	// A reservation past the remaining seats fails and changes nothing.
	err = s.AdjustSeats(context.Background(), "a", -4)
	assert.True(t, errors.Is(err, domain.ErrInsufficientSeats))
	got, err = s.GetFlight(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableSeats)

	// A release is capped at capacity.
	require.NoError(t, s.AdjustSeats(context.Background(), "a", 50))
	got, err = s.GetFlight(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, got.TotalSeats, got.AvailableSeats)

	assert.True(t, errors.Is(s.AdjustSeats(context.Background(), "missing", -1), domain.ErrNotFound))
}

func TestAdjustSeats_ConcurrentReservations(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "a", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z", testutil.WithSeats(4)),
	)

	const attempts = 16
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.AdjustSeats(context.Background(), "a", -2)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, errors.Is(err, domain.ErrInsufficientSeats))
		}
	}
	assert.Equal(t, 2, succeeded)

	got, err := s.GetFlight(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableSeats, "availability never goes negative")
}

func TestDestinations(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "a", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
		testutil.NewFlight(t, "b", "JFK", "LAX", "2026-09-15T09:00:00Z", "2026-09-15T15:00:00Z"),
		testutil.NewFlight(t, "c", "JFK", "ORD", "2026-09-15T10:00:00Z", "2026-09-15T12:00:00Z"),
		testutil.NewFlight(t, "d", "ORD", "SFO", "2026-09-15T11:00:00Z", "2026-09-15T13:00:00Z"),
	)

	destinations, err := s.Destinations(context.Background(), "JFK")
	require.NoError(t, err)
	assert.Equal(t, []string{"LAX", "ORD"}, destinations, "distinct and sorted")
}

func TestPopularRoutes(t *testing.T) {
	s := New()
	seedFlights(t, s,
		testutil.NewFlight(t, "a", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
		testutil.NewFlight(t, "b", "JFK", "LAX", "2026-09-15T09:00:00Z", "2026-09-15T15:00:00Z"),
		testutil.NewFlight(t, "c", "JFK", "LAX", "2026-09-15T10:00:00Z", "2026-09-15T16:00:00Z"),
		testutil.NewFlight(t, "d", "ORD", "SFO", "2026-09-15T11:00:00Z", "2026-09-15T13:00:00Z"),
	)

	routes, err := s.PopularRoutes(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, domain.RouteCount{Origin: "JFK", Destination: "LAX", Flights: 3}, routes[0])
	assert.Equal(t, domain.RouteCount{Origin: "ORD", Destination: "SFO", Flights: 1}, routes[1])

	capped, err := s.PopularRoutes(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, capped, 1)
}
