package persistence

import (
	"context"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
)

// UserRepository defines methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: no user with this ID
	// - ErrDatabaseConnection: the store is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email (case-insensitive)
	//
	// Possible errors:
	// - ErrUserNotFound: no user with this email
	// - ErrDatabaseConnection: the store is unreachable
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create creates a new user and fills in its assigned ID
	//
	// Possible errors:
	// - ErrDuplicateUser: email already registered
	// - ErrDatabaseConnection: the store is unreachable
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole changes a user's role
	//
	// Possible errors:
	// - ErrUserNotFound: no user with this ID
	// - ErrDatabaseConnection: the store is unreachable
	UpdateRole(ctx context.Context, id uint64, role entity.Role) error

	// Delete removes a user and all transactions referencing it, in one
	// atomic unit of work
	//
	// Possible errors:
	// - ErrUserNotFound: no user with this ID
	// - ErrDatabaseConnection: the store is unreachable
	Delete(ctx context.Context, id uint64) error

	// List returns all users ordered by creation time, newest first
	List(ctx context.Context) ([]*entity.User, error)

	// Stats aggregates totals across the ledger
	Stats(ctx context.Context) (*LedgerStats, error)
}

// LedgerStats holds aggregate figures for the admin dashboard
type LedgerStats struct {
	TotalUsers            int64
	TotalCredits          int64
	CompletedTransactions int64
}
