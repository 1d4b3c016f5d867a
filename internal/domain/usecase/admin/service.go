package admin

import (
	"context"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
)

// Service implements administrative operations over users and the ledger
type Service struct {
	userRepo persistence.UserRepository
	ledger   persistence.LedgerStore
	logger   coreport.Logger
}

// NewService creates a new admin service
func NewService(
	userRepo persistence.UserRepository,
	ledger persistence.LedgerStore,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo: userRepo,
		ledger:   ledger,
		logger:   logger,
	}
}

// ListUsers returns all users, newest first
func (s *Service) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.userRepo.List(ctx)
}

// Stats returns aggregate ledger figures
func (s *Service) Stats(ctx context.Context) (*persistence.LedgerStats, error) {
	return s.userRepo.Stats(ctx)
}

// DeleteUser removes a user and all of its transactions
//
// Possible errors:
// - ErrUserNotFound: no user exists with the given ID
func (s *Service) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("User deleted", map[string]any{"user_id": id})
	return nil
}

// UpdateRole changes a user's role
//
// Possible errors:
// - ErrInvalidRequest: the role is not a known role
// - ErrUserNotFound: no user exists with the given ID
func (s *Service) UpdateRole(ctx context.Context, id uint64, role entity.Role) error {
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return errs.ErrInvalidRequest
	}
	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	s.logger.Info("User role updated", map[string]any{
		"user_id": id,
		"role":    string(role),
	})
	return nil
}

// GiftCredits credits a user's balance as an administrative grant and
// returns the new balance
//
// Possible errors:
// - ErrInvalidAmount: credits is not positive
// - ErrUserNotFound: no user exists with the given ID
func (s *Service) GiftCredits(ctx context.Context, id uint64, credits int64) (int64, error) {
	if credits <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	balance, err := s.ledger.Credit(ctx, id, credits, entity.TypeAdminGift, "")
	if err != nil {
		return 0, err
	}

	s.logger.Info("Credits gifted", map[string]any{
		"user_id":     id,
		"credits":     credits,
		"new_balance": balance,
	})
	return balance, nil
}
