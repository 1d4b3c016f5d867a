package credits

import (
	"context"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
)

// Operation is one unit of paid provider work. It returns the URL of the
// produced result.
type Operation func(ctx context.Context) (string, error)

// Receipt is the outcome of a successfully charged operation
type Receipt struct {
	ResultURL  string
	Cost       int64
	NewBalance int64
}

// Executor wraps a provider call with correct charge semantics: cheap
// pre-check, provider call bounded by a timeout, then an atomic debit only
// after the provider succeeded. A failed provider call never charges the
// user.
type Executor struct {
	ledger          persistence.LedgerStore
	guard           *Guard
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	providerTimeout coreport.Duration
}

// NewExecutor creates a new operation executor
func NewExecutor(
	ledger persistence.LedgerStore,
	guard *Guard,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	providerTimeout coreport.Duration,
) *Executor {
	return &Executor{
		ledger:          ledger,
		guard:           guard,
		timeProvider:    timeProvider,
		logger:          logger,
		providerTimeout: providerTimeout,
	}
}

// Execute runs one paid operation for the user.
//
// If the debit fails with ErrInsufficientBalance after the provider already
// succeeded (two operations racing the same low balance), the provider result
// is discarded and the error returned; the external provider cost was still
// incurred. That gap is logged for monitoring rather than retried.
func (e *Executor) Execute(
	ctx context.Context,
	userID uint64,
	cost int64,
	txType entity.TransactionType,
	op Operation,
) (*Receipt, error) {
	// Cheap early rejection before incurring provider cost. Not binding.
	if _, err := e.guard.Authorize(ctx, userID, cost); err != nil {
		return nil, err
	}

	opCtx, cancel := e.timeProvider.WithTimeout(ctx, e.providerTimeout)
	defer cancel()

	resultURL, err := op(opCtx)
	if err != nil {
		e.logger.Warn("Provider operation failed, no charge applied", map[string]any{
			"user_id": userID,
			"tx_type": string(txType),
			"error":   err.Error(),
		})
		if errs.IsProviderError(err) {
			return nil, err
		}
		return nil, errs.NewProviderError("image", string(txType), err)
	}

	// Binding check and debit in one atomic unit.
	newBalance, err := e.ledger.Debit(ctx, userID, cost, txType)
	if err != nil {
		if errs.IsInsufficientBalanceError(err) {
			// The balance moved between the pre-check and the debit. The
			// provider was charged externally; surface for monitoring.
			e.logger.Warn("Debit lost balance race after provider success", map[string]any{
				"user_id": userID,
				"cost":    cost,
				"tx_type": string(txType),
			})
		}
		return nil, err
	}

	e.logger.Info("Paid operation completed", map[string]any{
		"user_id":     userID,
		"cost":        cost,
		"tx_type":     string(txType),
		"new_balance": newBalance,
	})

	return &Receipt{
		ResultURL:  resultURL,
		Cost:       cost,
		NewBalance: newBalance,
	}, nil
}
