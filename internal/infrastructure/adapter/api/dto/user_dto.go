package dto

import (
	"time"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
)

// UserResponse represents a user account in API responses
type UserResponse struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a user entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		Balance:   user.Balance(),
		CreatedAt: user.CreatedAt,
	}
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID          uint64     `json:"id"`
	Type        string     `json:"type"`
	Amount      int64      `json:"amount"`
	Status      string     `json:"status"`
	ExternalID  string     `json:"externalId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
}

// NewTransactionResponse maps a transaction entity to its API representation
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Status:      string(transaction.Status),
		ExternalID:  transaction.ExternalIDValue(),
		CreatedAt:   transaction.CreatedAt,
		ProcessedAt: transaction.ProcessedAt,
	}
}

// StatsResponse represents aggregate ledger figures
type StatsResponse struct {
	TotalUsers            int64 `json:"totalUsers"`
	TotalCredits          int64 `json:"totalCredits"`
	CompletedTransactions int64 `json:"completedTransactions"`
}
