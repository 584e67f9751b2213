package usecase

import (
	"context"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// findDirect returns one direct itinerary per flight matching the criteria
// route, day window, and availability floor. Price and seat-count filters are
// deliberately not applied here; filtering happens once, after the merge.
func (uc *searchUseCase) findDirect(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Itinerary, error) {
	from, to, err := uc.dayWindow(criteria)
	if err != nil {
		return nil, err
	}

	legs, err := uc.flights.FindFlights(ctx, domain.FlightQuery{
		Origin:           criteria.Origin,
		Destination:      criteria.Destination,
		NotStatuses:      notCancelled,
		SeatsGreaterThan: &seatsOverZero,
		DepartureFrom:    from,
		DepartureTo:      to,
		Limit:            criteria.ResultLimit(),
	})
	if err != nil {
		return nil, err
	}

	itineraries := make([]domain.Itinerary, 0, len(legs))
	for _, leg := range legs {
		itineraries = append(itineraries, domain.NewDirectItinerary(leg))
	}
	return itineraries, nil
}
