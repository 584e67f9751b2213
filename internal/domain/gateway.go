package domain

import "context"

//go:generate mockgen -destination=mock_gateway.go -package=domain github.com/flight-booking/flight-booking-backend/internal/domain PaymentGateway

// PaymentGateway abstracts the external payment processor. Implementations
// must honor context cancellation and return ErrPaymentDeclined (wrapped)
// when the processor rejects the charge.
type PaymentGateway interface {
	// Charge submits a charge and returns the processor's transaction ID.
	Charge(ctx context.Context, amount float64, currency, method, reference string) (string, error)

	// Refund reverses a previously completed charge.
	Refund(ctx context.Context, transactionID string, amount float64) error
}
