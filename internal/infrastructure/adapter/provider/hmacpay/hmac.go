package hmacpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
)

// SignaturePolicy controls how strictly webhook signatures are checked
type SignaturePolicy string

// Signature policies
const (
	// PolicyRequired rejects any payload without a valid signature
	PolicyRequired SignaturePolicy = "required"
	// PolicyBestEffort verifies when a secret is configured, otherwise
	// processes unsigned payloads with a warning
	PolicyBestEffort SignaturePolicy = "best-effort"
)

// Config holds generic webhook provider configuration
type Config struct {
	CheckoutBaseURL string
	WebhookSecret   string
	Policy          SignaturePolicy
}

// Provider implements provider.PaymentProvider for payment vendors that POST
// JSON webhooks signed with hex-encoded HMAC-SHA256 of the raw body
type Provider struct {
	config Config
	logger coreport.Logger
}

// New creates a new HMAC webhook payment provider
func New(config Config, logger coreport.Logger) *Provider {
	if config.Policy == "" {
		config.Policy = PolicyBestEffort
	}
	return &Provider{
		config: config,
		logger: logger,
	}
}

// Name identifies the provider variant in logs
func (p *Provider) Name() string {
	return "hmac-webhook"
}

// CreateSession builds the hosted checkout redirect carrying the correlation
// token and purchase parameters in the query string
func (p *Provider) CreateSession(ctx context.Context, req provider.CheckoutRequest) (*provider.CheckoutSession, error) {
	base, err := url.Parse(p.config.CheckoutBaseURL)
	if err != nil || p.config.CheckoutBaseURL == "" {
		return nil, errs.NewProviderError(p.Name(), "create checkout session",
			fmt.Errorf("invalid checkout base URL %q", p.config.CheckoutBaseURL))
	}

	q := base.Query()
	q.Set("token", req.ExternalID)
	q.Set("credits", fmt.Sprintf("%d", req.Credits))
	q.Set("amount_cents", fmt.Sprintf("%d", req.AmountCents))
	base.RawQuery = q.Encode()

	return &provider.CheckoutSession{
		RedirectURL: base.String(),
		SessionID:   req.ExternalID,
	}, nil
}

// webhookPayload tolerates the field vocabularies of several vendors
type webhookPayload struct {
	Token       string `json:"token"`
	ExternalID  string `json:"externalId"`
	ExternalID2 string `json:"external_id"`
	SessionID   string `json:"sessionId"`
	SessionID2  string `json:"session_id"`
	T           string `json:"t"`

	Status string `json:"status"`
	Event  string `json:"event"`
	State  string `json:"state"`
}

func (w *webhookPayload) token() string {
	for _, v := range []string{w.Token, w.ExternalID, w.ExternalID2, w.SessionID, w.SessionID2, w.T} {
		if v != "" {
			return v
		}
	}
	return ""
}

func (w *webhookPayload) status() string {
	for _, v := range []string{w.Status, w.Event, w.State} {
		if v != "" {
			return v
		}
	}
	return ""
}

// VerifyAndParseWebhook checks the HMAC signature per the configured policy
// and extracts the correlation token and status
func (p *Provider) VerifyAndParseWebhook(payload []byte, signatureHeader string) (*provider.WebhookEvent, error) {
	if err := p.verifySignature(payload, signatureHeader); err != nil {
		return nil, err
	}

	var parsed webhookPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrMalformedPayload, err.Error())
	}

	token := parsed.token()
	if token == "" {
		return nil, fmt.Errorf("%w: no correlation token in payload", errs.ErrMalformedPayload)
	}

	return &provider.WebhookEvent{
		ExternalID: token,
		Status:     parsed.status(),
	}, nil
}

func (p *Provider) verifySignature(payload []byte, signatureHeader string) error {
	if p.config.WebhookSecret == "" {
		if p.config.Policy == PolicyRequired {
			return fmt.Errorf("%w: no webhook secret configured", errs.ErrConfiguration)
		}
		p.logger.Warn("Processing unsigned webhook, no secret configured", nil)
		return nil
	}

	// With a secret configured, a missing header can never verify. The
	// policy only relaxes the no-secret case above.
	if signatureHeader == "" {
		return fmt.Errorf("%w: missing signature header", errs.ErrInvalidSignature)
	}

	mac := hmac.New(sha256.New, []byte(p.config.WebhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signatureHeader)) {
		return fmt.Errorf("%w: signature mismatch", errs.ErrInvalidSignature)
	}
	return nil
}
