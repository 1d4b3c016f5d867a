package persistence

import (
	"context"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
)

// PendingOutcome is the terminal state a pending purchase resolves to
type PendingOutcome string

// Pending purchase outcomes
const (
	OutcomeCompleted PendingOutcome = "completed"
	OutcomeFailed    PendingOutcome = "failed"
)

// LedgerStore is the source of truth for balances and transaction history.
// It is the sole writer of User.Balance; every mutation pairs the balance
// change with its transaction row in one atomic unit of work.
type LedgerStore interface {
	// Debit atomically checks balance >= cost, decrements it, and inserts a
	// completed spend transaction of -cost. Returns the new balance.
	//
	// Possible errors:
	// - ErrInsufficientBalance: balance < cost at commit time
	// - ErrUserNotFound: user does not exist
	// - ErrDatabaseConnection: the store is unreachable
	Debit(ctx context.Context, userID uint64, cost int64, txType entity.TransactionType) (int64, error)

	// Credit atomically increments the balance and inserts a completed credit
	// transaction. When externalID is non-empty and a completed transaction
	// already carries it, the call is an idempotent no-op returning the
	// current balance.
	//
	// Possible errors:
	// - ErrUserNotFound: user does not exist
	// - ErrDatabaseConnection: the store is unreachable
	Credit(ctx context.Context, userID uint64, credits int64, txType entity.TransactionType, externalID string) (int64, error)

	// CreatePendingPurchase inserts a pending purchase transaction keyed by
	// the correlation token.
	//
	// Possible errors:
	// - ErrDuplicateExternalID: the token is already in use
	// - ErrUserNotFound: user does not exist
	// - ErrDatabaseConnection: the store is unreachable
	CreatePendingPurchase(ctx context.Context, userID uint64, credits int64, externalID string) (*entity.Transaction, error)

	// ResolvePending moves the pending transaction identified by externalID to
	// its terminal state. Resolving to completed also credits the owning
	// user's balance by the transaction amount in the same unit of work.
	// Only pending transactions resolve: an already-resolved row reports
	// ErrTransactionNotFound, so callers can tell a replay from a first
	// delivery.
	//
	// Possible errors:
	// - ErrTransactionNotFound: no pending transaction carries the token
	// - ErrDatabaseConnection: the store is unreachable
	ResolvePending(ctx context.Context, externalID string, outcome PendingOutcome) (*entity.Transaction, error)
}
