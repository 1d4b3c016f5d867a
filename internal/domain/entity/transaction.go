package entity

import (
	"time"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
)

// TransactionType identifies what a ledger entry paid for
type TransactionType string

// Transaction types
const (
	TypePurchase        TransactionType = "purchase"
	TypeImageGeneration TransactionType = "image_generation"
	TypeImageEdit       TransactionType = "image_edit"
	TypeImageVariation  TransactionType = "image_variation"
	TypeAdminGift       TransactionType = "admin_gift"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// Transaction statuses. Completed is terminal; a transaction only ever
// moves pending -> completed or pending -> failed.
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction represents one ledger entry affecting a user's credit balance.
// Amount is signed: positive entries add credits, negative entries spend them.
// ExternalID, when set, is the correlation token linking the entry to a
// payment-provider session; at most one transaction carries a given token.
type Transaction struct {
	ID          uint64
	UserID      uint64
	Type        TransactionType
	Amount      int64
	Status      TransactionStatus
	ExternalID  *string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// NewPendingPurchase creates a pending purchase transaction bound to an
// external correlation token
func NewPendingPurchase(userID uint64, credits int64, externalID string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if credits <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if externalID == "" {
		return nil, errs.ErrInvalidExternalID
	}

	return &Transaction{
		UserID:     userID,
		Type:       TypePurchase,
		Amount:     credits,
		Status:     StatusPending,
		ExternalID: &externalID,
		CreatedAt:  timeProvider.Now(),
	}, nil
}

// NewCompletedSpend creates a spend transaction that is born completed; the
// ledger store inserts it atomically with the balance debit
func NewCompletedSpend(userID uint64, cost int64, txType TransactionType, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if cost <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      -cost,
		Status:      StatusCompleted,
		CreatedAt:   now,
		ProcessedAt: &now,
	}, nil
}

// MarkCompleted moves a pending transaction to its terminal completed state
func (t *Transaction) MarkCompleted(timeProvider coreport.TimeProvider) error {
	if t.Status == StatusCompleted {
		return nil // idempotent
	}
	if t.Status != StatusPending {
		return errs.ErrInvalidStatusTransition
	}
	now := timeProvider.Now()
	t.Status = StatusCompleted
	t.ProcessedAt = &now
	return nil
}

// MarkFailed moves a pending transaction to failed. Completed transactions
// never regress.
func (t *Transaction) MarkFailed(timeProvider coreport.TimeProvider) error {
	if t.Status == StatusCompleted {
		return errs.ErrInvalidStatusTransition
	}
	now := timeProvider.Now()
	t.Status = StatusFailed
	t.ProcessedAt = &now
	return nil
}

// IsCredit reports whether this transaction adds credits to the balance
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

// ExternalIDValue returns the correlation token or the empty string
func (t *Transaction) ExternalIDValue() string {
	if t.ExternalID == nil {
		return ""
	}
	return *t.ExternalID
}
