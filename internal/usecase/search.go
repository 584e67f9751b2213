// Package usecase contains the business logic of the booking backend. Its
// centerpiece is the itinerary search pipeline: a direct-leg finder and a
// connection synthesizer running concurrently, followed by a merge, filter,
// rank, and truncate pass over the combined results.
package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/internal/infrastructure/logger"
)

// DefaultConnectionFanout bounds concurrent second-leg lookups when no
// configuration is supplied.
const DefaultConnectionFanout = 8

// ItineraryCache stores completed search results keyed by criteria. It is a
// pure optimization layer: the search contract never depends on it.
type ItineraryCache interface {
	// Get returns the cached result set for the criteria, if present.
	Get(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Itinerary, bool)

	// Set stores a result set for the criteria.
	Set(ctx context.Context, criteria domain.SearchCriteria, itineraries []domain.Itinerary)
}

// SearchUseCase defines the interface for itinerary search.
type SearchUseCase interface {
	// Search returns direct and one-stop itineraries matching the
	// criteria, ranked and capped. An empty result is not an error.
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Itinerary, error)
}

// SearchConfig contains configuration options for the search use case.
type SearchConfig struct {
	// Location is the reference timezone for calendar-day windows.
	Location *time.Location

	// ConnectionFanout bounds concurrent second-leg lookups.
	ConnectionFanout int

	// Cache is the optional result cache; nil disables caching.
	Cache ItineraryCache

	// Logger receives search diagnostics; nil disables logging.
	Logger *logger.Logger
}

// searchUseCase implements SearchUseCase against a FlightStore.
type searchUseCase struct {
	flights domain.FlightStore
	loc     *time.Location
	fanout  int
	cache   ItineraryCache
	log     *logger.Logger
}

// NewSearchUseCase creates a SearchUseCase with the given store and
// configuration. If config is nil, UTC and default fan-out are used.
func NewSearchUseCase(flights domain.FlightStore, config *SearchConfig) SearchUseCase {
	uc := &searchUseCase{
		flights: flights,
		loc:     time.UTC,
		fanout:  DefaultConnectionFanout,
		log:     logger.Nop(),
	}
	if config != nil {
		if config.Location != nil {
			uc.loc = config.Location
		}
		if config.ConnectionFanout > 0 {
			uc.fanout = config.ConnectionFanout
		}
		if config.Cache != nil {
			uc.cache = config.Cache
		}
		if config.Logger != nil {
			uc.log = config.Logger
		}
	}
	return uc
}

// Search implements SearchUseCase.Search. The finder and synthesizer stages
// have no data dependency on each other and run concurrently; a failure in
// either fails the whole search so a result set is never silently missing one
// category.
func (uc *searchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Itinerary, error) {
	criteria.Normalize()
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, criteria); ok {
			uc.log.Debug().
				Str("origin", criteria.Origin).
				Str("destination", criteria.Destination).
				Msg("Search cache hit")
			return cached, nil
		}
	}

	start := time.Now()

	var (
		wg         sync.WaitGroup
		direct     []domain.Itinerary
		connecting []domain.Itinerary
		directErr  error
		connErr    error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		direct, directErr = uc.findDirect(ctx, criteria)
	}()

	if criteria.IncludeConnections {
		wg.Add(1)
		go func() {
			defer wg.Done()
			connecting, connErr = uc.findConnections(ctx, criteria)
		}()
	}

	wg.Wait()

	if directErr != nil {
		return nil, fmt.Errorf("direct legs: %w", directErr)
	}
	if connErr != nil {
		return nil, fmt.Errorf("connections: %w", connErr)
	}
	// Cancellation is all-or-nothing: never hand back a partial answer.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := make([]domain.Itinerary, 0, len(direct)+len(connecting))
	merged = append(merged, direct...)
	merged = append(merged, connecting...)

	results := truncateItineraries(rankItineraries(filterItineraries(merged, criteria)), criteria.ResultLimit())

	uc.log.Info().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Int("direct", len(direct)).
		Int("connecting", len(connecting)).
		Int("returned", len(results)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Itinerary search completed")

	if uc.cache != nil {
		uc.cache.Set(ctx, criteria, results)
	}

	return results, nil
}

// dayWindow resolves the optional departure date into query bounds in the
// reference timezone. Both pointers are nil when no date was supplied.
func (uc *searchUseCase) dayWindow(criteria domain.SearchCriteria) (from, to *time.Time, err error) {
	start, end, ok, err := criteria.DepartureDay(uc.loc)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, nil
	}
	return &start, &end, nil
}

// seatsOverZero is the availability floor shared by every search query.
var seatsOverZero = 0

// notCancelled excludes cancelled flights from every search query.
var notCancelled = []domain.FlightStatus{domain.FlightCancelled}

// Ensure searchUseCase implements SearchUseCase at compile time.
var _ SearchUseCase = (*searchUseCase)(nil)
