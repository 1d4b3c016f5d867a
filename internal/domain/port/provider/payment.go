package provider

import "context"

// CheckoutRequest describes a credit purchase to open with the payment provider
type CheckoutRequest struct {
	UserID      uint64
	Credits     int64
	AmountCents int64  // price in the provider's minor currency unit
	ExternalID  string // local correlation token, passed through as metadata
}

// CheckoutSession is the provider-side session the client is redirected to
type CheckoutSession struct {
	RedirectURL string
	SessionID   string
}

// WebhookEvent is a provider notification normalized to what the reconciler
// needs: the correlation token and the provider's raw status vocabulary
type WebhookEvent struct {
	ExternalID string
	Status     string
}

// PaymentProvider abstracts one payment vendor. Concrete variants (Stripe,
// generic HMAC-signed) are selected by configuration, never by conditional
// branching in business logic.
type PaymentProvider interface {
	// Name identifies the provider variant in logs
	Name() string

	// CreateSession opens a checkout session at the provider
	//
	// Possible errors:
	// - ErrProvider: the provider rejected the request or could not be reached
	CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)

	// VerifyAndParseWebhook authenticates the raw payload against the
	// signature header and extracts the correlation token and status
	//
	// Possible errors:
	// - ErrInvalidSignature: the signature check failed
	// - ErrMalformedPayload: no correlation token could be extracted
	VerifyAndParseWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error)
}
