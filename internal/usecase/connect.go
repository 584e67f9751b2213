package usecase

import (
	"context"
	"sync"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// findConnections synthesizes one-stop itineraries. It fetches candidate
// first legs departing the origin on the requested day toward any airport
// except the final destination, then fans out a bounded number of concurrent
// second-leg lookups, one per first leg, inside the layover window. Results
// are assembled in first-leg order so the output is deterministic regardless
// of goroutine scheduling.
func (uc *searchUseCase) findConnections(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Itinerary, error) {
	from, to, err := uc.dayWindow(criteria)
	if err != nil {
		return nil, err
	}

	firstLegs, err := uc.flights.FindFlights(ctx, domain.FlightQuery{
		Origin:           criteria.Origin,
		NotDestination:   criteria.Destination,
		NotStatuses:      notCancelled,
		SeatsGreaterThan: &seatsOverZero,
		DepartureFrom:    from,
		DepartureTo:      to,
		Limit:            criteria.ResultLimit(),
	})
	if err != nil {
		return nil, err
	}
	if len(firstLegs) == 0 {
		return nil, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	perLeg := make([][]domain.Itinerary, len(firstLegs))
	sem := make(chan struct{}, uc.fanout)

	for i, leg := range firstLegs {
		wg.Add(1)
		go func(i int, leg domain.Flight) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				if firstErr == nil {
					firstErr = ctx.Err()
				}
				mu.Unlock()
				return
			}

			itineraries, err := uc.secondLegs(ctx, criteria, leg)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			perLeg[i] = itineraries
		}(i, leg)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	var connecting []domain.Itinerary
	for _, itineraries := range perLeg {
		connecting = append(connecting, itineraries...)
	}
	return connecting, nil
}

// secondLegs finds onward flights from the first leg's arrival airport to the
// final destination departing inside the layover window. Both window bounds
// are inclusive. The first leg's own ID is excluded so a flight can never
// connect to itself.
func (uc *searchUseCase) secondLegs(ctx context.Context, criteria domain.SearchCriteria, first domain.Flight) ([]domain.Itinerary, error) {
	earliest := first.ArrivalTime.Add(domain.MinLayover)
	latest := first.ArrivalTime.Add(criteria.MaxLayover())

	seconds, err := uc.flights.FindFlights(ctx, domain.FlightQuery{
		Origin:               first.Destination,
		Destination:          criteria.Destination,
		ExcludeID:            first.ID,
		NotStatuses:          notCancelled,
		SeatsGreaterThan:     &seatsOverZero,
		DepartureFrom:        &earliest,
		DepartureTo:          &latest,
		DepartureToInclusive: true,
	})
	if err != nil {
		return nil, err
	}

	itineraries := make([]domain.Itinerary, 0, len(seconds))
	for _, second := range seconds {
		itineraries = append(itineraries, domain.NewConnectingItinerary(first, second))
	}
	return itineraries, nil
}
