package persistence

import (
	"context"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
)

// TransactionRepository defines read access to transaction history.
// Writes go through the LedgerStore so balance and history never diverge.
type TransactionRepository interface {
	// GetByExternalID retrieves a transaction by its correlation token
	//
	// Possible errors:
	// - ErrTransactionNotFound: no transaction carries the token
	// - ErrDatabaseConnection: the store is unreachable
	GetByExternalID(ctx context.Context, externalID string) (*entity.Transaction, error)

	// ListByUser returns a user's transactions, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
