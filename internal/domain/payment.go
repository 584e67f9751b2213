package domain

import (
	"fmt"
	"time"
)

// PaymentStatus represents the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// IsValid checks if the status is a known value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

// Payment records a charge against a booking. TransactionID is the gateway's
// identifier and is set once the charge has been submitted.
type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"booking_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod string        `json:"payment_method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Validate checks the payment invariants.
func (p *Payment) Validate() error {
	if p.BookingID == "" {
		return fmt.Errorf("%w: booking_id is required", ErrInvalidEntity)
	}
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidEntity)
	}
	if p.PaymentMethod == "" {
		return fmt.Errorf("%w: payment_method is required", ErrInvalidEntity)
	}
	if p.Status != "" && !p.Status.IsValid() {
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidEntity, p.Status)
	}
	return nil
}
