package stripepay

import (
	"context"
	"encoding/json"
	"fmt"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Config holds Stripe provider configuration
type Config struct {
	SecretKey      string
	WebhookSecret  string
	SuccessURL     string
	CancelURL      string
	Currency       string
	CentsPerCredit int64
}

// Provider implements provider.PaymentProvider backed by Stripe Checkout
type Provider struct {
	config Config
	logger coreport.Logger
}

// New creates a new Stripe payment provider
func New(config Config, logger coreport.Logger) (*Provider, error) {
	if config.SecretKey == "" {
		return nil, fmt.Errorf("%w: stripe secret key is required", errs.ErrConfiguration)
	}
	if config.Currency == "" {
		config.Currency = "usd"
	}

	stripe.Key = config.SecretKey

	return &Provider{
		config: config,
		logger: logger,
	}, nil
}

// Name identifies the provider variant in logs
func (p *Provider) Name() string {
	return "stripe"
}

// CreateSession opens a Stripe Checkout session. The local correlation token
// travels in the session metadata so the webhook can find its pending row.
func (p *Provider) CreateSession(ctx context.Context, req provider.CheckoutRequest) (*provider.CheckoutSession, error) {
	unitAmount := p.config.CentsPerCredit
	if unitAmount <= 0 && req.Credits > 0 {
		unitAmount = req.AmountCents / req.Credits
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.config.SuccessURL),
		CancelURL:  stripe.String(p.config.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.config.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Artify Credits"),
					},
					UnitAmount: stripe.Int64(unitAmount),
				},
				Quantity: stripe.Int64(req.Credits),
			},
		},
		ClientReferenceID: stripe.String(req.ExternalID),
		Metadata: map[string]string{
			"external_id": req.ExternalID,
			"user_id":     fmt.Sprintf("%d", req.UserID),
			"credits":     fmt.Sprintf("%d", req.Credits),
		},
	}
	params.Context = ctx

	session, err := checkoutsession.New(params)
	if err != nil {
		return nil, errs.NewProviderError("stripe", "create checkout session", err)
	}

	p.logger.Info("Stripe checkout session created", map[string]any{
		"session_id":  session.ID,
		"external_id": req.ExternalID,
		"user_id":     req.UserID,
	})

	return &provider.CheckoutSession{
		RedirectURL: session.URL,
		SessionID:   session.ID,
	}, nil
}

// VerifyAndParseWebhook authenticates the payload with Stripe's signature
// scheme and extracts the correlation token from the session metadata
func (p *Provider) VerifyAndParseWebhook(payload []byte, signatureHeader string) (*provider.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, p.config.WebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSignature, err.Error())
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrMalformedPayload, err.Error())
	}

	externalID := ""
	if session.Metadata != nil {
		externalID = session.Metadata["external_id"]
	}
	if externalID == "" {
		externalID = session.ClientReferenceID
	}
	if externalID == "" {
		return nil, fmt.Errorf("%w: no correlation token in event %s", errs.ErrMalformedPayload, event.Type)
	}

	return &provider.WebhookEvent{
		ExternalID: externalID,
		Status:     string(event.Type),
	}, nil
}
