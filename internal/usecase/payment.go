package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/internal/infrastructure/logger"
)

// ProcessPaymentRequest contains the fields required to charge a booking.
type ProcessPaymentRequest struct {
	BookingID     string `json:"booking_id"`
	PaymentMethod string `json:"payment_method"`
}

// WebhookEvent is a processor notification about an asynchronous payment
// outcome, delivered after the adapter has verified its signature.
type WebhookEvent struct {
	Type          string `json:"type"`
	TransactionID string `json:"transaction_id"`
}

// Webhook event types recognized by HandleWebhookEvent.
const (
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentFailed    = "payment.failed"
)

// PaymentUseCase defines the interface for payment processing.
type PaymentUseCase interface {
	// ProcessPayment charges a pending booking for its full price and
	// confirms it on success. A declined charge is recorded as a failed
	// payment and returned as an error.
	ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*domain.Payment, error)

	// GetPayment returns a payment by ID.
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)

	// GetPaymentByBooking returns the payment recorded for a booking.
	GetPaymentByBooking(ctx context.Context, bookingID string) (*domain.Payment, error)

	// ListPayments returns all recorded payments.
	ListPayments(ctx context.Context) ([]domain.Payment, error)

	// RefundPayment reverses a completed payment and cancels its booking.
	RefundPayment(ctx context.Context, id string) (*domain.Payment, error)

	// HandleWebhookEvent applies an asynchronous processor outcome to the
	// matching payment and booking. Unknown event types are ignored.
	HandleWebhookEvent(ctx context.Context, event WebhookEvent) error
}

type paymentUseCase struct {
	payments domain.PaymentStore
	bookings BookingUseCase
	gateway  domain.PaymentGateway
	currency string
	log      *logger.Logger
	now      func() time.Time
}

// NewPaymentUseCase creates a PaymentUseCase charging through the given
// gateway. Amounts are charged in USD.
func NewPaymentUseCase(payments domain.PaymentStore, bookings BookingUseCase, gateway domain.PaymentGateway, log *logger.Logger) PaymentUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &paymentUseCase{
		payments: payments,
		bookings: bookings,
		gateway:  gateway,
		currency: "USD",
		log:      log,
		now:      time.Now,
	}
}

func (uc *paymentUseCase) ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*domain.Payment, error) {
	booking, err := uc.bookings.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingPending {
		return nil, fmt.Errorf("%w: booking %s is %s, only pending bookings can be paid",
			domain.ErrInvalidEntity, booking.ID, booking.Status)
	}
	if existing, err := uc.payments.GetPaymentByBooking(ctx, booking.ID); err == nil && existing.Status == domain.PaymentCompleted {
		return nil, fmt.Errorf("%w: booking %s is already paid", domain.ErrAlreadyExists, booking.ID)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	payment := &domain.Payment{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		PaymentMethod: req.PaymentMethod,
		Status:        domain.PaymentPending,
		CreatedAt:     uc.now().UTC(),
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}
	if err := uc.payments.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	transactionID, chargeErr := uc.gateway.Charge(ctx, payment.Amount, uc.currency, payment.PaymentMethod, booking.BookingReference)
	if chargeErr != nil {
		payment.Status = domain.PaymentFailed
		if err := uc.payments.UpdatePayment(ctx, payment); err != nil {
			return nil, errors.Join(chargeErr, err)
		}
		uc.log.Warn().
			Str("payment_id", payment.ID).
			Str("booking_id", booking.ID).
			Err(chargeErr).
			Msg("Payment charge declined")
		return nil, chargeErr
	}

	payment.Status = domain.PaymentCompleted
	payment.TransactionID = transactionID
	if err := uc.payments.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}
	if _, err := uc.bookings.ConfirmBooking(ctx, booking.ID, payment.ID); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("payment_id", payment.ID).
		Str("booking_id", booking.ID).
		Str("transaction_id", transactionID).
		Msg("Payment completed")

	return payment, nil
}

func (uc *paymentUseCase) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return uc.payments.GetPayment(ctx, id)
}

func (uc *paymentUseCase) GetPaymentByBooking(ctx context.Context, bookingID string) (*domain.Payment, error) {
	return uc.payments.GetPaymentByBooking(ctx, bookingID)
}

func (uc *paymentUseCase) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return uc.payments.ListPayments(ctx)
}

func (uc *paymentUseCase) RefundPayment(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := uc.payments.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentCompleted {
		return nil, fmt.Errorf("%w: payment %s is %s, only completed payments can be refunded",
			domain.ErrInvalidEntity, payment.ID, payment.Status)
	}

	if err := uc.gateway.Refund(ctx, payment.TransactionID, payment.Amount); err != nil {
		return nil, err
	}

	payment.Status = domain.PaymentRefunded
	if err := uc.payments.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}
	if _, err := uc.bookings.CancelBooking(ctx, payment.BookingID); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("payment_id", payment.ID).
		Str("booking_id", payment.BookingID).
		Msg("Payment refunded")

	return payment, nil
}

func (uc *paymentUseCase) HandleWebhookEvent(ctx context.Context, event WebhookEvent) error {
	if event.TransactionID == "" {
		return fmt.Errorf("%w: webhook event missing transaction_id", domain.ErrInvalidEntity)
	}

	payment, err := uc.payments.GetPaymentByTransaction(ctx, event.TransactionID)
	if err != nil {
		return err
	}

	switch event.Type {
	case EventPaymentSucceeded:
		if payment.Status == domain.PaymentCompleted {
			return nil
		}
		payment.Status = domain.PaymentCompleted
		if err := uc.payments.UpdatePayment(ctx, payment); err != nil {
			return err
		}
		if _, err := uc.bookings.ConfirmBooking(ctx, payment.BookingID, payment.ID); err != nil {
			return err
		}
	case EventPaymentFailed:
		payment.Status = domain.PaymentFailed
		if err := uc.payments.UpdatePayment(ctx, payment); err != nil {
			return err
		}
	default:
		uc.log.Debug().Str("type", event.Type).Msg("Ignoring unhandled webhook event type")
	}
	return nil
}
