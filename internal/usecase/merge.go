package usecase

import (
	"sort"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// filterItineraries applies the post-merge filters: the price window is
// inclusive on both bounds, and every segment must carry at least the
// requested number of seats.
func filterItineraries(itineraries []domain.Itinerary, criteria domain.SearchCriteria) []domain.Itinerary {
	filtered := make([]domain.Itinerary, 0, len(itineraries))
	for _, itinerary := range itineraries {
		if criteria.MinPrice != nil && itinerary.TotalPrice < *criteria.MinPrice {
			continue
		}
		if criteria.MaxPrice != nil && itinerary.TotalPrice > *criteria.MaxPrice {
			continue
		}
		if itinerary.MinSeatsAvailable() < criteria.SeatsRequired() {
			continue
		}
		filtered = append(filtered, itinerary)
	}
	return filtered
}

// rankItineraries orders results direct-first, then by ascending total
// price. The sort is stable so equal-priced itineraries keep their producer
// order and repeated searches over unchanged data return identical output.
func rankItineraries(itineraries []domain.Itinerary) []domain.Itinerary {
	ranked := make([]domain.Itinerary, len(itineraries))
	copy(ranked, itineraries)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Direct != ranked[j].Direct {
			return ranked[i].Direct
		}
		return ranked[i].TotalPrice < ranked[j].TotalPrice
	})
	return ranked
}

// truncateItineraries caps the ranked results at max entries.
func truncateItineraries(itineraries []domain.Itinerary, max int) []domain.Itinerary {
	if max <= 0 || len(itineraries) <= max {
		return itineraries
	}
	return itineraries[:max]
}
