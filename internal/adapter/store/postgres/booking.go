package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

const bookingColumns = `id, booking_reference, user_id, flight_id, passenger_ids,
	seats, total_price, status, payment_id, created_at, updated_at`

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.BookingReference, &b.UserID, &b.FlightID,
		pq.Array(&b.PassengerIDs), &b.Seats, &b.TotalPrice, &b.Status,
		&b.PaymentID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBooking implements domain.BookingStore.CreateBooking.
func (s *Store) CreateBooking(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bookings (`+bookingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID, b.BookingReference, b.UserID, b.FlightID, pq.Array(b.PassengerIDs),
		b.Seats, b.TotalPrice, b.Status, b.PaymentID, b.CreatedAt, b.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: booking reference %s", domain.ErrAlreadyExists, b.BookingReference)
	}
	if err != nil {
		return storeErr("create booking", err)
	}
	return nil
}

// GetBooking implements domain.BookingStore.GetBooking.
func (s *Store) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id = $1", id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr("get booking", err)
	}
	return b, nil
}

// ListBookings implements domain.BookingStore.ListBookings.
func (s *Store) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.queryBookings(ctx,
		"SELECT "+bookingColumns+" FROM bookings ORDER BY created_at, id")
}

// ListBookingsByUser implements domain.BookingStore.ListBookingsByUser.
func (s *Store) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.queryBookings(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE user_id = $1 ORDER BY created_at, id", userID)
}

func (s *Store) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list bookings", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, storeErr("scan booking", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list bookings", err)
	}
	return bookings, nil
}

// UpdateBooking implements domain.BookingStore.UpdateBooking.
func (s *Store) UpdateBooking(ctx context.Context, b *domain.Booking) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE bookings SET passenger_ids = $2, seats = $3, total_price = $4,
			status = $5, payment_id = $6, updated_at = $7
		 WHERE id = $1`,
		b.ID, pq.Array(b.PassengerIDs), b.Seats, b.TotalPrice, b.Status,
		b.PaymentID, b.UpdatedAt)
	if err != nil {
		return storeErr("update booking", err)
	}
	return requireRow(res, "booking", b.ID)
}

// DeleteBooking implements domain.BookingStore.DeleteBooking.
func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = $1", id)
	if err != nil {
		return storeErr("delete booking", err)
	}
	return requireRow(res, "booking", id)
}

const paymentColumns = "id, booking_id, amount, payment_method, status, transaction_id, created_at"

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.BookingID, &p.Amount, &p.PaymentMethod, &p.Status,
		&p.TransactionID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePayment implements domain.PaymentStore.CreatePayment.
func (s *Store) CreatePayment(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (`+paymentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.BookingID, p.Amount, p.PaymentMethod, p.Status, p.TransactionID, p.CreatedAt)
	if err != nil {
		return storeErr("create payment", err)
	}
	return nil
}

// GetPayment implements domain.PaymentStore.GetPayment.
func (s *Store) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+paymentColumns+" FROM payments WHERE id = $1", id)
	p, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr("get payment", err)
	}
	return p, nil
}

// GetPaymentByBooking implements domain.PaymentStore.GetPaymentByBooking.
func (s *Store) GetPaymentByBooking(ctx context.Context, bookingID string) (*domain.Payment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE booking_id = $1
		 ORDER BY created_at DESC LIMIT 1`, bookingID)
	p, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment for booking %s", domain.ErrNotFound, bookingID)
	}
	if err != nil {
		return nil, storeErr("get payment by booking", err)
	}
	return p, nil
}

// GetPaymentByTransaction implements domain.PaymentStore.GetPaymentByTransaction.
func (s *Store) GetPaymentByTransaction(ctx context.Context, transactionID string) (*domain.Payment, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE transaction_id = $1", transactionID)
	p, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment with transaction %s", domain.ErrNotFound, transactionID)
	}
	if err != nil {
		return nil, storeErr("get payment by transaction", err)
	}
	return p, nil
}

// ListPayments implements domain.PaymentStore.ListPayments.
func (s *Store) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payments ORDER BY created_at, id")
	if err != nil {
		return nil, storeErr("list payments", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, storeErr("scan payment", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list payments", err)
	}
	return payments, nil
}

// UpdatePayment implements domain.PaymentStore.UpdatePayment.
func (s *Store) UpdatePayment(ctx context.Context, p *domain.Payment) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE payments SET status = $2, transaction_id = $3 WHERE id = $1`,
		p.ID, p.Status, p.TransactionID)
	if err != nil {
		return storeErr("update payment", err)
	}
	return requireRow(res, "payment", p.ID)
}
