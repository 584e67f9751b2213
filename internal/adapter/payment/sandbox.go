// Package payment provides the payment gateway adapter and webhook signature
// verification.
package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/internal/infrastructure/logger"
)

// SandboxGateway implements domain.PaymentGateway without an external
// processor. It approves every charge except those using the magic
// "declined" method, which lets tests and demos exercise the failure path.
type SandboxGateway struct {
	apiKey string
	log    *logger.Logger
}

// MethodAlwaysDeclined is the payment method the sandbox always rejects.
const MethodAlwaysDeclined = "declined"

// NewSandboxGateway creates a SandboxGateway. The API key is carried for
// parity with real processors but only logged at startup.
func NewSandboxGateway(apiKey string, log *logger.Logger) *SandboxGateway {
	if log == nil {
		log = logger.Nop()
	}
	return &SandboxGateway{apiKey: apiKey, log: log}
}

// Charge implements domain.PaymentGateway.Charge.
func (g *SandboxGateway) Charge(ctx context.Context, amount float64, currency, method, reference string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount %.2f", domain.ErrPaymentDeclined, amount)
	}
	if strings.EqualFold(method, MethodAlwaysDeclined) {
		return "", fmt.Errorf("%w: method declined by processor", domain.ErrPaymentDeclined)
	}

	transactionID := "txn_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	g.log.Debug().
		Str("reference", reference).
		Str("currency", currency).
		Float64("amount", amount).
		Str("transaction_id", transactionID).
		Msg("Sandbox charge approved")
	return transactionID, nil
}

// Refund implements domain.PaymentGateway.Refund.
func (g *SandboxGateway) Refund(ctx context.Context, transactionID string, amount float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if transactionID == "" {
		return fmt.Errorf("%w: missing transaction id", domain.ErrPaymentDeclined)
	}
	g.log.Debug().
		Str("transaction_id", transactionID).
		Float64("amount", amount).
		Msg("Sandbox refund accepted")
	return nil
}

var _ domain.PaymentGateway = (*SandboxGateway)(nil)
