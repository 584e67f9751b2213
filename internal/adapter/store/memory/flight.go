package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// FindFlights implements domain.FlightStore.FindFlights. Matches are
// returned in departure-time order so output is deterministic across runs.
func (s *Store) FindFlights(_ context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.Flight
	for _, f := range s.flights {
		if matchesQuery(f, q) {
			matches = append(matches, f)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].DepartureTime.Equal(matches[j].DepartureTime) {
			return matches[i].DepartureTime.Before(matches[j].DepartureTime)
		}
		return matches[i].ID < matches[j].ID
	})

	if q.Limit > 0 && len(matches) > q.Limit {
		matches = matches[:q.Limit]
	}
	return matches, nil
}

func matchesQuery(f domain.Flight, q domain.FlightQuery) bool {
	if q.Origin != "" && f.Origin != q.Origin {
		return false
	}
	if q.Destination != "" && f.Destination != q.Destination {
		return false
	}
	if q.NotDestination != "" && f.Destination == q.NotDestination {
		return false
	}
	if q.ExcludeID != "" && f.ID == q.ExcludeID {
		return false
	}
	if q.AirlineID != "" && f.AirlineID != q.AirlineID {
		return false
	}
	for _, status := range q.NotStatuses {
		if f.Status == status {
			return false
		}
	}
	if q.SeatsGreaterThan != nil && f.AvailableSeats <= *q.SeatsGreaterThan {
		return false
	}
	if q.DepartureFrom != nil && f.DepartureTime.Before(*q.DepartureFrom) {
		return false
	}
	if q.DepartureTo != nil {
		if q.DepartureToInclusive {
			if f.DepartureTime.After(*q.DepartureTo) {
				return false
			}
		} else if !f.DepartureTime.Before(*q.DepartureTo) {
			return false
		}
	}
	return true
}

// GetFlight implements domain.FlightStore.GetFlight.
func (s *Store) GetFlight(_ context.Context, id string) (*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.flights[id]
	if !ok {
		return nil, fmt.Errorf("%w: flight %s", domain.ErrNotFound, id)
	}
	return &f, nil
}

// CreateFlight implements domain.FlightStore.CreateFlight.
func (s *Store) CreateFlight(_ context.Context, f *domain.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ensureID(&f.ID)
	if _, ok := s.flights[f.ID]; ok {
		return fmt.Errorf("%w: flight %s", domain.ErrAlreadyExists, f.ID)
	}
	for _, existing := range s.flights {
		if existing.FlightNumber == f.FlightNumber {
			return fmt.Errorf("%w: flight number %s", domain.ErrAlreadyExists, f.FlightNumber)
		}
	}
	s.flights[f.ID] = *f
	return nil
}

// UpdateFlight implements domain.FlightStore.UpdateFlight.
func (s *Store) UpdateFlight(_ context.Context, f *domain.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.flights[f.ID]; !ok {
		return fmt.Errorf("%w: flight %s", domain.ErrNotFound, f.ID)
	}
	s.flights[f.ID] = *f
	return nil
}

// AdjustSeats implements domain.FlightStore.AdjustSeats. The check and the
// write happen under one write lock so concurrent reservations serialize
// instead of overselling.
func (s *Store) AdjustSeats(_ context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[id]
	if !ok {
		return fmt.Errorf("%w: flight %s", domain.ErrNotFound, id)
	}
	seats := f.AvailableSeats + delta
	if seats < 0 {
		return fmt.Errorf("%w: flight %s has %d seats, %d requested",
			domain.ErrInsufficientSeats, id, f.AvailableSeats, -delta)
	}
	if seats > f.TotalSeats {
		seats = f.TotalSeats
	}
	f.AvailableSeats = seats
	s.flights[id] = f
	return nil
}

// DeleteFlight implements domain.FlightStore.DeleteFlight.
func (s *Store) DeleteFlight(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.flights[id]; !ok {
		return fmt.Errorf("%w: flight %s", domain.ErrNotFound, id)
	}
	delete(s.flights, id)
	return nil
}

// Destinations implements domain.FlightStore.Destinations.
func (s *Store) Destinations(_ context.Context, origin string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, f := range s.flights {
		if f.Origin == origin {
			seen[f.Destination] = struct{}{}
		}
	}

	destinations := make([]string, 0, len(seen))
	for code := range seen {
		destinations = append(destinations, code)
	}
	sort.Strings(destinations)
	return destinations, nil
}

// PopularRoutes implements domain.FlightStore.PopularRoutes.
func (s *Store) PopularRoutes(_ context.Context, limit int) ([]domain.RouteCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[[2]string]int)
	for _, f := range s.flights {
		counts[[2]string{f.Origin, f.Destination}]++
	}

	routes := make([]domain.RouteCount, 0, len(counts))
	for route, n := range counts {
		routes = append(routes, domain.RouteCount{Origin: route[0], Destination: route[1], Flights: n})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Flights != routes[j].Flights {
			return routes[i].Flights > routes[j].Flights
		}
		if routes[i].Origin != routes[j].Origin {
			return routes[i].Origin < routes[j].Origin
		}
		return routes[i].Destination < routes[j].Destination
	})

	if limit > 0 && len(routes) > limit {
		routes = routes[:limit]
	}
	return routes, nil
}
