package credits

import (
	"context"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
)

// Ticket is the result of a pre-authorization check. It is NOT a reservation:
// the binding balance check happens inside the ledger debit after the
// provider call succeeds. The ticket only short-circuits requests that are
// clearly unaffordable before any provider cost is incurred.
type Ticket struct {
	UserID  uint64
	Cost    int64
	Balance int64 // balance observed at authorization time
}

// Guard gatekeeps credit-consuming operations
type Guard struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

// NewGuard creates a new balance guard
func NewGuard(userRepo persistence.UserRepository, logger coreport.Logger) *Guard {
	return &Guard{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authorize checks that the user can currently afford cost credits
func (g *Guard) Authorize(ctx context.Context, userID uint64, cost int64) (*Ticket, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if cost <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	user, err := g.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.CanAfford(cost) {
		g.logger.Warn("Authorization rejected: insufficient balance", map[string]any{
			"user_id": userID,
			"cost":    cost,
			"balance": user.Balance(),
		})
		return nil, errs.NewInsufficientBalanceError(userID, cost, user.Balance())
	}

	return &Ticket{
		UserID:  userID,
		Cost:    cost,
		Balance: user.Balance(),
	}, nil
}
