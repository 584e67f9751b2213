package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// SignatureHeader is the HTTP header carrying the webhook signature.
const SignatureHeader = "X-Webhook-Signature"

// WebhookVerifier checks processor webhook signatures. The signature is a
// hex-encoded HMAC-SHA256 of the raw request body under a shared secret.
type WebhookVerifier struct {
	secret []byte
}

// NewWebhookVerifier creates a verifier for the shared secret.
func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: []byte(secret)}
}

// Verify checks the signature against the raw body. Comparison is constant
// time.
func (v *WebhookVerifier) Verify(body []byte, signature string) error {
	if signature == "" {
		return fmt.Errorf("%w: missing webhook signature", domain.ErrUnauthorized)
	}
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: malformed webhook signature", domain.ErrUnauthorized)
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	if !hmac.Equal(mac.Sum(nil), expected) {
		return fmt.Errorf("%w: webhook signature mismatch", domain.ErrUnauthorized)
	}
	return nil
}

// Sign computes the signature for a body. Used by tests and the sandbox
// processor simulator.
func (v *WebhookVerifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
