package user

import (
	"context"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
)

// Service exposes the authenticated user's own data
type Service struct {
	userRepo        persistence.UserRepository
	transactionRepo persistence.TransactionRepository
	logger          coreport.Logger
}

// NewService creates a new user service
func NewService(
	userRepo persistence.UserRepository,
	transactionRepo persistence.TransactionRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Profile returns the user's account record
//
// Possible errors:
// - ErrUserNotFound: no user exists with the given ID
func (s *Service) Profile(ctx context.Context, userID uint64) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// History returns the user's ledger entries, newest first
func (s *Service) History(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	return s.transactionRepo.ListByUser(ctx, userID)
}
