package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// Passenger, airline, and airport stores.

// CreatePassenger implements domain.PassengerStore.CreatePassenger.
func (s *Store) CreatePassenger(_ context.Context, p *domain.Passenger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ensureID(&p.ID)
	if _, ok := s.passengers[p.ID]; ok {
		return fmt.Errorf("%w: passenger %s", domain.ErrAlreadyExists, p.ID)
	}
	s.passengers[p.ID] = *p
	return nil
}

// GetPassenger implements domain.PassengerStore.GetPassenger.
func (s *Store) GetPassenger(_ context.Context, id string) (*domain.Passenger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.passengers[id]
	if !ok {
		return nil, fmt.Errorf("%w: passenger %s", domain.ErrNotFound, id)
	}
	return &p, nil
}

// ListPassengers implements domain.PassengerStore.ListPassengers.
func (s *Store) ListPassengers(_ context.Context) ([]domain.Passenger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	passengers := make([]domain.Passenger, 0, len(s.passengers))
	for _, p := range s.passengers {
		passengers = append(passengers, p)
	}
	sortPassengers(passengers)
	return passengers, nil
}

// ListPassengersByUser implements domain.PassengerStore.ListPassengersByUser.
func (s *Store) ListPassengersByUser(_ context.Context, userID string) ([]domain.Passenger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var passengers []domain.Passenger
	for _, p := range s.passengers {
		if p.UserID == userID {
			passengers = append(passengers, p)
		}
	}
	sortPassengers(passengers)
	return passengers, nil
}

func sortPassengers(passengers []domain.Passenger) {
	sort.Slice(passengers, func(i, j int) bool { return passengers[i].ID < passengers[j].ID })
}

// UpdatePassenger implements domain.PassengerStore.UpdatePassenger.
func (s *Store) UpdatePassenger(_ context.Context, p *domain.Passenger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.passengers[p.ID]; !ok {
		return fmt.Errorf("%w: passenger %s", domain.ErrNotFound, p.ID)
	}
	s.passengers[p.ID] = *p
	return nil
}

// DeletePassenger implements domain.PassengerStore.DeletePassenger.
func (s *Store) DeletePassenger(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.passengers[id]; !ok {
		return fmt.Errorf("%w: passenger %s", domain.ErrNotFound, id)
	}
	delete(s.passengers, id)
	return nil
}

// CreateAirline implements domain.AirlineStore.CreateAirline.
func (s *Store) CreateAirline(_ context.Context, a *domain.Airline) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ensureID(&a.ID)
	if _, ok := s.airlines[a.ID]; ok {
		return fmt.Errorf("%w: airline %s", domain.ErrAlreadyExists, a.ID)
	}
	for _, existing := range s.airlines {
		if existing.Code == a.Code {
			return fmt.Errorf("%w: airline code %s", domain.ErrAlreadyExists, a.Code)
		}
	}
	s.airlines[a.ID] = *a
	return nil
}

// GetAirline implements domain.AirlineStore.GetAirline.
func (s *Store) GetAirline(_ context.Context, id string) (*domain.Airline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.airlines[id]
	if !ok {
		return nil, fmt.Errorf("%w: airline %s", domain.ErrNotFound, id)
	}
	return &a, nil
}

// ListAirlines implements domain.AirlineStore.ListAirlines.
func (s *Store) ListAirlines(_ context.Context) ([]domain.Airline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	airlines := make([]domain.Airline, 0, len(s.airlines))
	for _, a := range s.airlines {
		airlines = append(airlines, a)
	}
	sort.Slice(airlines, func(i, j int) bool { return airlines[i].Code < airlines[j].Code })
	return airlines, nil
}

// UpdateAirline implements domain.AirlineStore.UpdateAirline.
func (s *Store) UpdateAirline(_ context.Context, a *domain.Airline) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.airlines[a.ID]; !ok {
		return fmt.Errorf("%w: airline %s", domain.ErrNotFound, a.ID)
	}
	s.airlines[a.ID] = *a
	return nil
}

// DeleteAirline implements domain.AirlineStore.DeleteAirline.
func (s *Store) DeleteAirline(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.airlines[id]; !ok {
		return fmt.Errorf("%w: airline %s", domain.ErrNotFound, id)
	}
	delete(s.airlines, id)
	return nil
}

// CreateAirport implements domain.AirportStore.CreateAirport.
func (s *Store) CreateAirport(_ context.Context, a *domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ensureID(&a.ID)
	if _, ok := s.airports[a.ID]; ok {
		return fmt.Errorf("%w: airport %s", domain.ErrAlreadyExists, a.ID)
	}
	for _, existing := range s.airports {
		if existing.Code == a.Code {
			return fmt.Errorf("%w: airport code %s", domain.ErrAlreadyExists, a.Code)
		}
	}
	s.airports[a.ID] = *a
	return nil
}

// GetAirport implements domain.AirportStore.GetAirport.
func (s *Store) GetAirport(_ context.Context, id string) (*domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.airports[id]
	if !ok {
		return nil, fmt.Errorf("%w: airport %s", domain.ErrNotFound, id)
	}
	return &a, nil
}

// GetAirportByCode implements domain.AirportStore.GetAirportByCode.
func (s *Store) GetAirportByCode(_ context.Context, code string) (*domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.airports {
		if a.Code == code {
			airport := a
			return &airport, nil
		}
	}
	return nil, fmt.Errorf("%w: airport with code %s", domain.ErrNotFound, code)
}

// ListAirports implements domain.AirportStore.ListAirports.
func (s *Store) ListAirports(_ context.Context) ([]domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	airports := make([]domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		airports = append(airports, a)
	}
	sort.Slice(airports, func(i, j int) bool { return airports[i].Code < airports[j].Code })
	return airports, nil
}

// SearchAirports implements domain.AirportStore.SearchAirports with a
// case-insensitive substring match over name, city, and code.
func (s *Store) SearchAirports(_ context.Context, query string) ([]domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	var airports []domain.Airport
	for _, a := range s.airports {
		if strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.City), needle) ||
			strings.Contains(strings.ToLower(a.Code), needle) {
			airports = append(airports, a)
		}
	}
	sort.Slice(airports, func(i, j int) bool { return airports[i].Code < airports[j].Code })
	return airports, nil
}

// UpdateAirport implements domain.AirportStore.UpdateAirport.
func (s *Store) UpdateAirport(_ context.Context, a *domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.airports[a.ID]; !ok {
		return fmt.Errorf("%w: airport %s", domain.ErrNotFound, a.ID)
	}
	s.airports[a.ID] = *a
	return nil
}

// DeleteAirport implements domain.AirportStore.DeleteAirport.
func (s *Store) DeleteAirport(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.airports[id]; !ok {
		return fmt.Errorf("%w: airport %s", domain.ErrNotFound, id)
	}
	delete(s.airports, id)
	return nil
}
