package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/test/mock"
	"github.com/flight-booking/flight-booking-backend/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// baseCriteria returns a valid JFK to LAX search for 2026-09-15 with
// connections enabled.
func baseCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:             "JFK",
		Destination:        "LAX",
		DepartureDate:      "2026-09-15",
		IncludeConnections: true,
	}
}

// stubCache is a minimal ItineraryCache that records interactions.
type stubCache struct {
	mu       sync.Mutex
	stored   []domain.Itinerary
	canned   []domain.Itinerary
	hit      bool
	getCalls int
	setCalls int
}

func (c *stubCache) Get(_ context.Context, _ domain.SearchCriteria) ([]domain.Itinerary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getCalls++
	return c.canned, c.hit
}

func (c *stubCache) Set(_ context.Context, _ domain.SearchCriteria, itineraries []domain.Itinerary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCalls++
	c.stored = itineraries
}

// TestSearch_DirectAndConnecting verifies that a direct leg and a valid
// one-stop connection are both returned, direct first.
func TestSearch_DirectAndConnecting(t *testing.T) {
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z", testutil.WithPrice(450)),
		testutil.NewFlight(t, "c1", "JFK", "ORD", "2026-09-15T07:00:00Z", "2026-09-15T09:00:00Z", testutil.WithPrice(150)),
		// Departs exactly 90 minutes after c1 arrives; the minimum
		// layover bound is inclusive.
		testutil.NewFlight(t, "c2", "ORD", "LAX", "2026-09-15T10:30:00Z", "2026-09-15T13:00:00Z", testutil.WithPrice(180)),
	)

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), baseCriteria())

	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Direct)
	assert.Equal(t, "d1", results[0].ID)

	conn := results[1]
	assert.False(t, conn.Direct)
	assert.Equal(t, "c1-c2", conn.ID)
	assert.Equal(t, "JFK", conn.Origin)
	assert.Equal(t, "LAX", conn.Destination)
	assert.Equal(t, float64(330), conn.TotalPrice)
	require.NotNil(t, conn.Layover)
	assert.Equal(t, "ORD", conn.Layover.Airport)
	assert.Equal(t, 90, conn.Layover.DurationMinutes)
	require.Len(t, conn.Segments, 2)
	assert.Equal(t, "c1", conn.Segments[0].ID)
	assert.Equal(t, "c2", conn.Segments[1].ID)
}

// TestSearch_ShortLayoverExcluded verifies that a 50-minute connection is
// never synthesized.
func TestSearch_ShortLayoverExcluded(t *testing.T) {
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "c1", "JFK", "ORD", "2026-09-15T07:00:00Z", "2026-09-15T09:00:00Z"),
		// Departs 50 minutes after c1 arrives, below the minimum layover.
		testutil.NewFlight(t, "c2", "ORD", "LAX", "2026-09-15T09:50:00Z", "2026-09-15T12:00:00Z"),
	)

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), baseCriteria())

	require.NoError(t, err)
	assert.Empty(t, results)
}

// TestSearch_MaxLayoverInclusive verifies both edges of the layover window:
// a second leg at exactly the maximum layover is kept, one minute past it
// is dropped.
func TestSearch_MaxLayoverInclusive(t *testing.T) {
	criteria := baseCriteria()
	criteria.MaxLayoverHours = testutil.Ptr(3)

	tests := []struct {
		name      string
		departure string
		expected  int
	}{
		{"exactly at max layover", "2026-09-15T12:00:00Z", 1},
		{"one minute past max layover", "2026-09-15T12:01:00Z", 0},
		{"exactly at min layover", "2026-09-15T10:30:00Z", 1},
		{"one minute under min layover", "2026-09-15T10:29:00Z", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewFlightStore().WithFlights(
				testutil.NewFlight(t, "c1", "JFK", "ORD", "2026-09-15T07:00:00Z", "2026-09-15T09:00:00Z"),
				testutil.NewFlight(t, "c2", "ORD", "LAX", tt.departure, "2026-09-15T18:00:00Z"),
			)

			uc := NewSearchUseCase(store, nil)
			results, err := uc.Search(context.Background(), criteria)

			require.NoError(t, err)
			assert.Len(t, results, tt.expected)
		})
	}
}

// TestSearch_PriceBoundsInclusive verifies that both price bounds include
// their boundary values.
func TestSearch_PriceBoundsInclusive(t *testing.T) {
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "just-under", "JFK", "LAX", "2026-09-15T06:00:00Z", "2026-09-15T12:00:00Z", testutil.WithPrice(99.99)),
		testutil.NewFlight(t, "at-min", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z", testutil.WithPrice(100)),
		testutil.NewFlight(t, "at-max", "JFK", "LAX", "2026-09-15T10:00:00Z", "2026-09-15T16:00:00Z", testutil.WithPrice(500)),
		testutil.NewFlight(t, "just-over", "JFK", "LAX", "2026-09-15T12:00:00Z", "2026-09-15T18:00:00Z", testutil.WithPrice(500.01)),
	)

	criteria := baseCriteria()
	criteria.MinPrice = testutil.Ptr(100.0)
	criteria.MaxPrice = testutil.Ptr(500.0)

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), criteria)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "at-min", results[0].ID)
	assert.Equal(t, "at-max", results[1].ID)
}

// TestSearch_ConnectionsDisabled verifies that disabling connections skips
// the synthesizer entirely: only one store query runs.
func TestSearch_ConnectionsDisabled(t *testing.T) {
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
		testutil.NewFlight(t, "c1", "JFK", "ORD", "2026-09-15T07:00:00Z", "2026-09-15T09:00:00Z"),
		testutil.NewFlight(t, "c2", "ORD", "LAX", "2026-09-15T10:30:00Z", "2026-09-15T13:00:00Z"),
	)

	criteria := baseCriteria()
	criteria.IncludeConnections = false

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), criteria)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Direct)
	assert.Equal(t, 1, store.FindCalls(), "only the direct finder should query the store")
}

// TestSearch_MaxResultsTruncates verifies that the result set is capped
// after ranking.
func TestSearch_MaxResultsTruncates(t *testing.T) {
	store := mock.NewFlightStore()
	flights := make([]domain.Flight, 0, 20)
	for i := 0; i < 20; i++ {
		dep := time.Date(2026, 9, 15, 5, i*30, 0, 0, time.UTC)
		flights = append(flights, domain.Flight{
			ID:             "f" + string(rune('a'+i)),
			FlightNumber:   "FB" + string(rune('a'+i)),
			AirlineID:      "airline-1",
			Origin:         "JFK",
			Destination:    "LAX",
			DepartureTime:  dep,
			ArrivalTime:    dep.Add(6 * time.Hour),
			Price:          200,
			AvailableSeats: 50,
			TotalSeats:     180,
			Status:         domain.FlightScheduled,
		})
	}
	store.WithFlights(flights...)

	criteria := baseCriteria()
	criteria.MaxResults = testutil.Ptr(5)

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), criteria)

	require.NoError(t, err)
	assert.Len(t, results, 5)
}

// TestSearch_Ordering verifies that every direct itinerary outranks every
// connection, and that price ascends within each group.
func TestSearch_Ordering(t *testing.T) {
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "d-expensive", "JFK", "LAX", "2026-09-15T06:00:00Z", "2026-09-15T12:00:00Z", testutil.WithPrice(500)),
		testutil.NewFlight(t, "d-cheap", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z", testutil.WithPrice(200)),
		testutil.NewFlight(t, "c1", "JFK", "ORD", "2026-09-15T07:00:00Z", "2026-09-15T09:00:00Z", testutil.WithPrice(50)),
		testutil.NewFlight(t, "c2", "ORD", "LAX", "2026-09-15T11:00:00Z", "2026-09-15T13:30:00Z", testutil.WithPrice(60)),
	)

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), baseCriteria())

	require.NoError(t, err)
	require.Len(t, results, 3)

	// The connection totals 110, cheaper than either direct flight, yet
	// direct itineraries still rank first.
	assert.Equal(t, "d-cheap", results[0].ID)
	assert.Equal(t, "d-expensive", results[1].ID)
	assert.Equal(t, "c1-c2", results[2].ID)
}

// TestSearch_Idempotent verifies that repeating a search over unchanged data
// returns identical results in identical order.
func TestSearch_Idempotent(t *testing.T) {
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z", testutil.WithPrice(300)),
		testutil.NewFlight(t, "d2", "JFK", "LAX", "2026-09-15T10:00:00Z", "2026-09-15T16:00:00Z", testutil.WithPrice(300)),
		testutil.NewFlight(t, "c1", "JFK", "ORD", "2026-09-15T07:00:00Z", "2026-09-15T09:00:00Z", testutil.WithPrice(100)),
		testutil.NewFlight(t, "c2", "ORD", "LAX", "2026-09-15T11:00:00Z", "2026-09-15T14:00:00Z", testutil.WithPrice(120)),
		testutil.NewFlight(t, "c3", "ORD", "LAX", "2026-09-15T12:00:00Z", "2026-09-15T15:00:00Z", testutil.WithPrice(120)),
	)

	uc := NewSearchUseCase(store, nil)

	first, err := uc.Search(context.Background(), baseCriteria())
	require.NoError(t, err)
	second, err := uc.Search(context.Background(), baseCriteria())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestSearch_MinSeatsPerSegment verifies that the seat requirement applies to
// every segment: a connection is only as bookable as its weakest leg.
func TestSearch_MinSeatsPerSegment(t *testing.T) {
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z", testutil.WithSeats(5)),
		testutil.NewFlight(t, "c1", "JFK", "ORD", "2026-09-15T07:00:00Z", "2026-09-15T09:00:00Z", testutil.WithSeats(10)),
		testutil.NewFlight(t, "c2", "ORD", "LAX", "2026-09-15T11:00:00Z", "2026-09-15T14:00:00Z", testutil.WithSeats(2)),
	)

	criteria := baseCriteria()
	criteria.MinSeats = testutil.Ptr(3)

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), criteria)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "d1", results[0].ID)
}

// TestSearch_DayWindowBounds verifies the calendar-day window: midnight of
// the requested day is included, midnight of the next day is not.
func TestSearch_DayWindowBounds(t *testing.T) {
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "prev-day", "JFK", "LAX", "2026-09-14T23:59:00Z", "2026-09-15T06:00:00Z"),
		testutil.NewFlight(t, "at-midnight", "JFK", "LAX", "2026-09-15T00:00:00Z", "2026-09-15T06:00:00Z"),
		testutil.NewFlight(t, "late-evening", "JFK", "LAX", "2026-09-15T23:59:00Z", "2026-09-16T06:00:00Z"),
		testutil.NewFlight(t, "next-midnight", "JFK", "LAX", "2026-09-16T00:00:00Z", "2026-09-16T06:00:00Z"),
	)

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), baseCriteria())

	require.NoError(t, err)
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	assert.ElementsMatch(t, []string{"at-midnight", "late-evening"}, ids)
}

// TestSearch_CancelledFlightsExcluded verifies that cancelled flights never
// appear as either a direct leg or a connection segment.
func TestSearch_CancelledFlightsExcluded(t *testing.T) {
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z",
			testutil.WithStatus(domain.FlightCancelled)),
		testutil.NewFlight(t, "c1", "JFK", "ORD", "2026-09-15T07:00:00Z", "2026-09-15T09:00:00Z"),
		testutil.NewFlight(t, "c2", "ORD", "LAX", "2026-09-15T11:00:00Z", "2026-09-15T14:00:00Z",
			testutil.WithStatus(domain.FlightCancelled)),
	)

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), baseCriteria())

	require.NoError(t, err)
	assert.Empty(t, results)
}

// TestSearch_EmptyResultIsNotAnError verifies that finding nothing is a
// successful search.
func TestSearch_EmptyResultIsNotAnError(t *testing.T) {
	uc := NewSearchUseCase(mock.NewFlightStore(), nil)

	results, err := uc.Search(context.Background(), baseCriteria())

	require.NoError(t, err)
	assert.Empty(t, results)
}

// TestSearch_InvalidCriteria verifies that validation failures surface as
// ErrInvalidCriteria before any store query runs.
func TestSearch_InvalidCriteria(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.SearchCriteria)
	}{
		{"missing origin", func(c *domain.SearchCriteria) { c.Origin = "" }},
		{"bad origin code", func(c *domain.SearchCriteria) { c.Origin = "NEWYORK" }},
		{"same origin and destination", func(c *domain.SearchCriteria) { c.Destination = "JFK" }},
		{"malformed date", func(c *domain.SearchCriteria) { c.DepartureDate = "15-09-2026" }},
		{"impossible date", func(c *domain.SearchCriteria) { c.DepartureDate = "2026-02-30" }},
		{"layover out of range", func(c *domain.SearchCriteria) { c.MaxLayoverHours = testutil.Ptr(25) }},
		{"explicit zero layover", func(c *domain.SearchCriteria) { c.MaxLayoverHours = testutil.Ptr(0) }},
		{"negative min price", func(c *domain.SearchCriteria) { c.MinPrice = testutil.Ptr(-1.0) }},
		{"min price above max price", func(c *domain.SearchCriteria) {
			c.MinPrice = testutil.Ptr(500.0)
			c.MaxPrice = testutil.Ptr(100.0)
		}},
		{"explicit zero min seats", func(c *domain.SearchCriteria) { c.MinSeats = testutil.Ptr(0) }},
		{"max results above cap", func(c *domain.SearchCriteria) { c.MaxResults = testutil.Ptr(101) }},
		{"explicit zero max results", func(c *domain.SearchCriteria) { c.MaxResults = testutil.Ptr(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewFlightStore()
			criteria := baseCriteria()
			tt.mutate(&criteria)

			uc := NewSearchUseCase(store, nil)
			results, err := uc.Search(context.Background(), criteria)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidCriteria))
			assert.Nil(t, results)
			assert.Zero(t, store.FindCalls(), "invalid criteria must not reach the store")
		})
	}
}

// TestSearch_LowercaseCodesNormalized verifies that airport codes are matched
// case-insensitively via normalization.
func TestSearch_LowercaseCodesNormalized(t *testing.T) {
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
	)

	criteria := baseCriteria()
	criteria.Origin = " jfk "
	criteria.Destination = "lax"

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), criteria)

	require.NoError(t, err)
	assert.Len(t, results, 1)
}

// TestSearch_StoreErrorPropagated verifies that a backing-store failure fails
// the whole search rather than returning a partial result.
func TestSearch_StoreErrorPropagated(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := mock.NewFlightStore().WithError(storeErr)

	uc := NewSearchUseCase(store, nil)
	results, err := uc.Search(context.Background(), baseCriteria())

	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
	assert.Nil(t, results)
}

// TestSearch_ConnectionStageErrorPropagated verifies that a failure in the
// synthesizer alone still fails the search, even when the direct stage
// succeeded.
func TestSearch_ConnectionStageErrorPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stageErr := errors.New("query timeout")
	flights := domain.NewMockFlightStore(ctrl)
	flights.EXPECT().FindFlights(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
			// The synthesizer's first-leg query excludes the final
			// destination; the direct query targets it.
			if q.NotDestination != "" {
				return nil, stageErr
			}
			return []domain.Flight{
				testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
			}, nil
		},
	).AnyTimes()

	uc := NewSearchUseCase(flights, nil)
	results, err := uc.Search(context.Background(), baseCriteria())

	require.Error(t, err)
	assert.True(t, errors.Is(err, stageErr))
	assert.Nil(t, results)
}

// TestSearch_ContextCancelled verifies that cancellation aborts the search
// with no partial results.
func TestSearch_ContextCancelled(t *testing.T) {
	store := mock.NewFlightStore().
		WithFlights(testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z")).
		WithDelay(5 * time.Second)

	uc := NewSearchUseCase(store, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	results, err := uc.Search(ctx, baseCriteria())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Nil(t, results)
	assert.Less(t, elapsed, 1*time.Second)
}

// TestSearch_CacheHit verifies that a cache hit short-circuits the store
// entirely.
func TestSearch_CacheHit(t *testing.T) {
	cached := []domain.Itinerary{
		domain.NewDirectItinerary(testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z")),
	}
	cache := &stubCache{canned: cached, hit: true}
	store := mock.NewFlightStore()

	uc := NewSearchUseCase(store, &SearchConfig{Cache: cache})
	results, err := uc.Search(context.Background(), baseCriteria())

	require.NoError(t, err)
	assert.Equal(t, cached, results)
	assert.Zero(t, store.FindCalls())
	assert.Zero(t, cache.setCalls)
}

// TestSearch_CacheMissStoresResult verifies that a completed search populates
// the cache.
func TestSearch_CacheMissStoresResult(t *testing.T) {
	cache := &stubCache{}
	store := mock.NewFlightStore().WithFlights(
		testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z"),
	)

	uc := NewSearchUseCase(store, &SearchConfig{Cache: cache})
	results, err := uc.Search(context.Background(), baseCriteria())

	require.NoError(t, err)
	assert.Equal(t, 1, cache.getCalls)
	assert.Equal(t, 1, cache.setCalls)
	assert.Equal(t, results, cache.stored)
}

// TestSearch_ConcurrentStages verifies that the finder and synthesizer run
// concurrently rather than back to back.
func TestSearch_ConcurrentStages(t *testing.T) {
	delay := 60 * time.Millisecond
	store := mock.NewFlightStore().
		WithFlights(testutil.NewFlight(t, "d1", "JFK", "LAX", "2026-09-15T08:00:00Z", "2026-09-15T14:00:00Z")).
		WithDelay(delay)

	uc := NewSearchUseCase(store, nil)

	start := time.Now()
	_, err := uc.Search(context.Background(), baseCriteria())
	elapsed := time.Since(start)

	require.NoError(t, err)
	// Two sequential stage queries would take at least 2x the delay.
	assert.Less(t, elapsed, 2*delay, "finder and synthesizer should overlap")
}
