package payment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxGateway_Charge(t *testing.T) {
	g := NewSandboxGateway("sandbox-key", nil)

	t.Run("approves a normal charge", func(t *testing.T) {
		txn, err := g.Charge(context.Background(), 450, "USD", "card", "BK-A1B2C3D4")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(txn, "txn_"))
	})

	t.Run("unique transaction per charge", func(t *testing.T) {
		first, err := g.Charge(context.Background(), 100, "USD", "card", "BK-1")
		require.NoError(t, err)
		second, err := g.Charge(context.Background(), 100, "USD", "card", "BK-1")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("declines the magic method", func(t *testing.T) {
		_, err := g.Charge(context.Background(), 450, "USD", "declined", "BK-1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPaymentDeclined))

		_, err = g.Charge(context.Background(), 450, "USD", "DECLINED", "BK-1")
		assert.True(t, errors.Is(err, domain.ErrPaymentDeclined))
	})

	t.Run("declines a non-positive amount", func(t *testing.T) {
		_, err := g.Charge(context.Background(), 0, "USD", "card", "BK-1")
		assert.True(t, errors.Is(err, domain.ErrPaymentDeclined))
	})

	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := g.Charge(ctx, 450, "USD", "card", "BK-1")
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestSandboxGateway_Refund(t *testing.T) {
	g := NewSandboxGateway("sandbox-key", nil)

	t.Run("accepts a refund", func(t *testing.T) {
		assert.NoError(t, g.Refund(context.Background(), "txn_abc", 450))
	})

	t.Run("rejects a missing transaction id", func(t *testing.T) {
		err := g.Refund(context.Background(), "", 450)
		assert.True(t, errors.Is(err, domain.ErrPaymentDeclined))
	})
}
