package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// CreateBooking implements domain.BookingStore.CreateBooking.
func (s *Store) CreateBooking(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ensureID(&b.ID)
	if _, ok := s.bookings[b.ID]; ok {
		return fmt.Errorf("%w: booking %s", domain.ErrAlreadyExists, b.ID)
	}
	for _, existing := range s.bookings {
		if existing.BookingReference == b.BookingReference {
			return fmt.Errorf("%w: booking reference %s", domain.ErrAlreadyExists, b.BookingReference)
		}
	}
	s.bookings[b.ID] = *b
	return nil
}

// GetBooking implements domain.BookingStore.GetBooking.
func (s *Store) GetBooking(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	return &b, nil
}

// ListBookings implements domain.BookingStore.ListBookings.
func (s *Store) ListBookings(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		bookings = append(bookings, b)
	}
	sortBookings(bookings)
	return bookings, nil
}

// ListBookingsByUser implements domain.BookingStore.ListBookingsByUser.
func (s *Store) ListBookingsByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	sortBookings(bookings)
	return bookings, nil
}

func sortBookings(bookings []domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
		}
		return bookings[i].ID < bookings[j].ID
	})
}

// UpdateBooking implements domain.BookingStore.UpdateBooking.
func (s *Store) UpdateBooking(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[b.ID]; !ok {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, b.ID)
	}
	s.bookings[b.ID] = *b
	return nil
}

// DeleteBooking implements domain.BookingStore.DeleteBooking.
func (s *Store) DeleteBooking(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	delete(s.bookings, id)
	return nil
}

// CreatePayment implements domain.PaymentStore.CreatePayment.
func (s *Store) CreatePayment(_ context.Context, p *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ensureID(&p.ID)
	if _, ok := s.payments[p.ID]; ok {
		return fmt.Errorf("%w: payment %s", domain.ErrAlreadyExists, p.ID)
	}
	s.payments[p.ID] = *p
	return nil
}

// GetPayment implements domain.PaymentStore.GetPayment.
func (s *Store) GetPayment(_ context.Context, id string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments[id]
	if !ok {
		return nil, fmt.Errorf("%w: payment %s", domain.ErrNotFound, id)
	}
	return &p, nil
}

// GetPaymentByBooking implements domain.PaymentStore.GetPaymentByBooking.
func (s *Store) GetPaymentByBooking(_ context.Context, bookingID string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.payments {
		if p.BookingID == bookingID {
			payment := p
			return &payment, nil
		}
	}
	return nil, fmt.Errorf("%w: payment for booking %s", domain.ErrNotFound, bookingID)
}

// GetPaymentByTransaction implements domain.PaymentStore.GetPaymentByTransaction.
func (s *Store) GetPaymentByTransaction(_ context.Context, transactionID string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.payments {
		if p.TransactionID == transactionID {
			payment := p
			return &payment, nil
		}
	}
	return nil, fmt.Errorf("%w: payment with transaction %s", domain.ErrNotFound, transactionID)
}

// ListPayments implements domain.PaymentStore.ListPayments.
func (s *Store) ListPayments(_ context.Context) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := make([]domain.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		payments = append(payments, p)
	}
	sort.Slice(payments, func(i, j int) bool {
		if !payments[i].CreatedAt.Equal(payments[j].CreatedAt) {
			return payments[i].CreatedAt.Before(payments[j].CreatedAt)
		}
		return payments[i].ID < payments[j].ID
	})
	return payments, nil
}

// UpdatePayment implements domain.PaymentStore.UpdatePayment.
func (s *Store) UpdatePayment(_ context.Context, p *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.payments[p.ID]; !ok {
		return fmt.Errorf("%w: payment %s", domain.ErrNotFound, p.ID)
	}
	s.payments[p.ID] = *p
	return nil
}
