package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// CreateUser implements domain.UserStore.CreateUser.
func (s *Store) CreateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ensureID(&u.ID)
	if _, ok := s.users[u.ID]; ok {
		return fmt.Errorf("%w: user %s", domain.ErrAlreadyExists, u.ID)
	}
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return fmt.Errorf("%w: email %s", domain.ErrAlreadyExists, u.Email)
		}
	}
	s.users[u.ID] = *u
	return nil
}

// GetUser implements domain.UserStore.GetUser.
func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return &u, nil
}

// GetUserByEmail implements domain.UserStore.GetUserByEmail.
func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%w: user with email %s", domain.ErrNotFound, email)
}

// ListUsers implements domain.UserStore.ListUsers.
func (s *Store) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

// UpdateUser implements domain.UserStore.UpdateUser.
func (s *Store) UpdateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, u.ID)
	}
	s.users[u.ID] = *u
	return nil
}

// DeleteUser implements domain.UserStore.DeleteUser.
func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	delete(s.users, id)
	return nil
}
