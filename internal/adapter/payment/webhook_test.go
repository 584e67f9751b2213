package payment

import (
	"errors"
	"testing"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookVerifier(t *testing.T) {
	v := NewWebhookVerifier("webhook-secret")
	body := []byte(`{"type":"payment.succeeded","transaction_id":"txn_abc"}`)

	t.Run("valid signature", func(t *testing.T) {
		assert.NoError(t, v.Verify(body, v.Sign(body)))
	})

	t.Run("missing signature", func(t *testing.T) {
		err := v.Verify(body, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("malformed signature", func(t *testing.T) {
		err := v.Verify(body, "not-hex!")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewWebhookVerifier("a-different-secret")
		err := v.Verify(body, other.Sign(body))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := v.Sign(body)
		tampered := []byte(`{"type":"payment.succeeded","transaction_id":"txn_xyz"}`)
		err := v.Verify(tampered, sig)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})
}
