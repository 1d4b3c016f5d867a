package payment

import (
	"context"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
	"github.com/google/uuid"
)

// Intent is the client-facing result of initiating a checkout
type Intent struct {
	Token       string
	RedirectURL string
}

// PriceCentsPerCredit converts credits to the provider's minor currency unit.
// Pricing is a presentation concern; the ledger only ever sees whole credits.
const PriceCentsPerCredit = 100

// IntentTracker bridges a purchase request to an external payment session.
// The pending ledger row is created BEFORE the provider session so a webhook
// can never arrive for a transaction that does not exist yet.
type IntentTracker struct {
	ledger       persistence.LedgerStore
	gateway      provider.PaymentProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewIntentTracker creates a new payment intent tracker
func NewIntentTracker(
	ledger persistence.LedgerStore,
	gateway provider.PaymentProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *IntentTracker {
	return &IntentTracker{
		ledger:       ledger,
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateIntent opens a checkout for the given number of credits
func (t *IntentTracker) CreateIntent(ctx context.Context, userID uint64, credits int64) (*Intent, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if credits <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	token := "chk_" + uuid.NewString()

	if _, err := t.ledger.CreatePendingPurchase(ctx, userID, credits, token); err != nil {
		return nil, err
	}

	session, err := t.gateway.CreateSession(ctx, provider.CheckoutRequest{
		UserID:      userID,
		Credits:     credits,
		AmountCents: credits * PriceCentsPerCredit,
		ExternalID:  token,
	})
	if err != nil {
		// The pending row exists but no session was ever opened; close it so
		// it cannot linger forever.
		if _, failErr := t.ledger.ResolvePending(ctx, token, persistence.OutcomeFailed); failErr != nil {
			t.logger.Error("Failed to close orphaned pending purchase", map[string]any{
				"user_id":     userID,
				"external_id": token,
				"error":       failErr.Error(),
			})
		}
		if errs.IsProviderError(err) {
			return nil, err
		}
		return nil, errs.NewProviderError(t.gateway.Name(), "create session", err)
	}

	t.logger.Info("Checkout intent created", map[string]any{
		"user_id":     userID,
		"credits":     credits,
		"external_id": token,
		"provider":    t.gateway.Name(),
		"session_id":  session.SessionID,
	})

	return &Intent{
		Token:       token,
		RedirectURL: session.RedirectURL,
	}, nil
}
