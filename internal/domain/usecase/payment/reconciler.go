package payment

import (
	"context"
	"errors"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
)

// ReconcileResult reports what a webhook delivery did. Acknowledged results
// must be answered with a success response so the provider stops redelivering.
type ReconcileResult struct {
	ExternalID string
	Outcome    Outcome
	Applied    bool // true when this delivery mutated the ledger
}

// Reconciler consumes asynchronous payment-provider events and applies the
// balance mutation exactly once, regardless of redelivery or ordering.
//
// Failure semantics: invalid signatures and payloads without a correlation
// token return errors (inviting the provider's retry); every other path
// acknowledges, including unknown tokens and replays of already-completed
// transactions.
type Reconciler struct {
	ledger          persistence.LedgerStore
	transactionRepo persistence.TransactionRepository
	gateway         provider.PaymentProvider
	logger          coreport.Logger
}

// NewReconciler creates a new webhook reconciler
func NewReconciler(
	ledger persistence.LedgerStore,
	transactionRepo persistence.TransactionRepository,
	gateway provider.PaymentProvider,
	logger coreport.Logger,
) *Reconciler {
	return &Reconciler{
		ledger:          ledger,
		transactionRepo: transactionRepo,
		gateway:         gateway,
		logger:          logger,
	}
}

// Handle processes one raw webhook delivery.
//
// Possible errors:
// - ErrInvalidSignature: the payload failed authentication
// - ErrMalformedPayload: no correlation token could be extracted
// - ErrDatabaseConnection: the ledger store is unreachable (provider retries)
func (r *Reconciler) Handle(ctx context.Context, payload []byte, signatureHeader string) (*ReconcileResult, error) {
	event, err := r.gateway.VerifyAndParseWebhook(payload, signatureHeader)
	if err != nil {
		r.logger.Warn("Webhook rejected before processing", map[string]any{
			"provider": r.gateway.Name(),
			"error":    err.Error(),
		})
		return nil, err
	}

	// Lookup. An unknown token is acknowledged without mutation: the event
	// may belong to a session this system never created, and erroring back
	// would only trigger a redelivery storm.
	txn, err := r.transactionRepo.GetByExternalID(ctx, event.ExternalID)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			r.logger.Warn("Webhook for unknown correlation token acknowledged", map[string]any{
				"provider":    r.gateway.Name(),
				"external_id": event.ExternalID,
				"status":      event.Status,
			})
			return &ReconcileResult{ExternalID: event.ExternalID, Outcome: OutcomeUnknown}, nil
		}
		return nil, err
	}

	// Idempotency gate: completed is terminal. Redeliveries of an event that
	// already credited the balance must be plain acknowledgements.
	if txn.Status == entity.StatusCompleted {
		r.logger.Info("Webhook replay for completed transaction acknowledged", map[string]any{
			"provider":    r.gateway.Name(),
			"external_id": event.ExternalID,
		})
		return &ReconcileResult{ExternalID: event.ExternalID, Outcome: OutcomeSuccess}, nil
	}

	outcome := ClassifyStatus(event.Status)
	switch outcome {
	case OutcomeSuccess:
		if _, err := r.ledger.ResolvePending(ctx, event.ExternalID, persistence.OutcomeCompleted); err != nil {
			// A concurrent delivery may have resolved it first; that is the
			// idempotent replay path, not a failure.
			if errors.Is(err, errs.ErrTransactionNotFound) {
				return &ReconcileResult{ExternalID: event.ExternalID, Outcome: outcome}, nil
			}
			return nil, errs.NewWebhookError(event.ExternalID, "applying credit", err)
		}
		r.logger.Info("Purchase completed, balance credited", map[string]any{
			"provider":    r.gateway.Name(),
			"external_id": event.ExternalID,
			"user_id":     txn.UserID,
			"credits":     txn.Amount,
		})
		return &ReconcileResult{ExternalID: event.ExternalID, Outcome: outcome, Applied: true}, nil

	case OutcomeFailure:
		if _, err := r.ledger.ResolvePending(ctx, event.ExternalID, persistence.OutcomeFailed); err != nil {
			if errors.Is(err, errs.ErrTransactionNotFound) {
				return &ReconcileResult{ExternalID: event.ExternalID, Outcome: outcome}, nil
			}
			return nil, errs.NewWebhookError(event.ExternalID, "marking failed", err)
		}
		r.logger.Info("Purchase failed, no balance change", map[string]any{
			"provider":    r.gateway.Name(),
			"external_id": event.ExternalID,
			"user_id":     txn.UserID,
			"status":      event.Status,
		})
		return &ReconcileResult{ExternalID: event.ExternalID, Outcome: outcome, Applied: true}, nil

	default:
		r.logger.Warn("Webhook with unrecognized status acknowledged", map[string]any{
			"provider":    r.gateway.Name(),
			"external_id": event.ExternalID,
			"status":      event.Status,
		})
		return &ReconcileResult{ExternalID: event.ExternalID, Outcome: OutcomeUnknown}, nil
	}
}
