package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/database"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerRepository implements persistence.LedgerStore using GORM. Every
// balance mutation locks the owning user row with FOR UPDATE and writes the
// balance change together with its transaction row in one database
// transaction, so concurrent operations on the same user serialize at the
// row lock and balance never diverges from history.
type LedgerRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	retryConfig     database.RetryConfig
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		retryConfig:     database.DefaultRetryConfig(),
	}
}

// lockUser fetches the user row under an exclusive row lock
func (r *LedgerRepository) lockUser(tx *gorm.DB, userID uint64) (*model.User, error) {
	var userModel model.User
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&userModel, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, result.Error
	}
	return &userModel, nil
}

func (r *LedgerRepository) wrapError(operation string, err error, userID uint64) error {
	switch {
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrInsufficientBalance),
		errors.Is(err, errs.ErrTransactionNotFound),
		errors.Is(err, errs.ErrDuplicateExternalID):
		return err
	}

	r.logger.Error(fmt.Sprintf("Database error during %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Debit atomically checks and decrements the balance, recording a completed
// spend transaction of -cost. Returns the new balance.
func (r *LedgerRepository) Debit(ctx context.Context, userID uint64, cost int64, txType entity.TransactionType) (int64, error) {
	if cost <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	var newBalance int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userModel, err := r.lockUser(tx, userID)
		if err != nil {
			return err
		}

		if userModel.Balance < cost {
			r.logger.Warn("Insufficient balance for debit", map[string]any{
				"user_id":         userID,
				"cost":            cost,
				"current_balance": userModel.Balance,
				"type":            string(txType),
			})
			return errs.ErrInsufficientBalance
		}

		now := r.timeProvider.Now()
		newBalance = userModel.Balance - cost

		result := tx.Model(userModel).Updates(map[string]interface{}{
			"balance":    newBalance,
			"updated_at": now,
		})
		if result.Error != nil {
			return result.Error
		}

		transactionModel := model.Transaction{
			UserID:      userID,
			Type:        string(txType),
			Amount:      -cost,
			Status:      string(entity.StatusCompleted),
			CreatedAt:   now,
			ProcessedAt: &now,
		}
		return tx.Create(&transactionModel).Error
	})

	if err != nil {
		return 0, r.wrapError("debit", err, userID)
	}

	r.logger.Info("Balance debited", map[string]any{
		"user_id":     userID,
		"cost":        cost,
		"type":        string(txType),
		"new_balance": newBalance,
	})
	return newBalance, nil
}

// Credit atomically increments the balance, recording a completed credit
// transaction. A non-empty externalID already carried by a completed
// transaction makes the call an idempotent no-op.
func (r *LedgerRepository) Credit(ctx context.Context, userID uint64, credits int64, txType entity.TransactionType, externalID string) (int64, error) {
	if credits <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	var newBalance int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if externalID != "" {
			var count int64
			if err := tx.Model(&model.Transaction{}).
				Where("external_id = ? AND status = ?", externalID, string(entity.StatusCompleted)).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				r.logger.Info("Credit already applied, skipping", map[string]any{
					"user_id":     userID,
					"external_id": externalID,
				})
				var userModel model.User
				if err := tx.First(&userModel, userID).Error; err != nil {
					return err
				}
				newBalance = userModel.Balance
				return nil
			}
		}

		userModel, err := r.lockUser(tx, userID)
		if err != nil {
			return err
		}

		now := r.timeProvider.Now()
		newBalance = userModel.Balance + credits

		result := tx.Model(userModel).Updates(map[string]interface{}{
			"balance":    newBalance,
			"updated_at": now,
		})
		if result.Error != nil {
			return result.Error
		}

		transactionModel := model.Transaction{
			UserID:      userID,
			Type:        string(txType),
			Amount:      credits,
			Status:      string(entity.StatusCompleted),
			CreatedAt:   now,
			ProcessedAt: &now,
		}
		if externalID != "" {
			transactionModel.ExternalID = &externalID
		}
		return tx.Create(&transactionModel).Error
	})

	if err != nil {
		// The pre-check is unlocked, so two concurrent calls with the same
		// token can both pass it. The loser hits the unique index on insert,
		// which rolls its balance increment back; that is the idempotent
		// replay path, not a failure.
		if r.creditLostIdempotencyRace(err, externalID) {
			r.logger.Info("Credit already applied, skipping", map[string]any{
				"user_id":     userID,
				"external_id": externalID,
			})
			var userModel model.User
			if readErr := r.db.WithContext(ctx).First(&userModel, userID).Error; readErr != nil {
				if errors.Is(readErr, gorm.ErrRecordNotFound) {
					return 0, errs.ErrUserNotFound
				}
				return 0, r.wrapError("credit", readErr, userID)
			}
			return userModel.Balance, nil
		}
		return 0, r.wrapError("credit", err, userID)
	}

	r.logger.Info("Balance credited", map[string]any{
		"user_id":     userID,
		"credits":     credits,
		"type":        string(txType),
		"new_balance": newBalance,
	})
	return newBalance, nil
}

// creditLostIdempotencyRace reports whether a failed credit transaction was
// rejected by the unique correlation-token index, meaning a concurrent call
// with the same token committed first
func (r *LedgerRepository) creditLostIdempotencyRace(err error, externalID string) bool {
	return externalID != "" && r.errorClassifier.IsDuplicateKeyError(err)
}

// CreatePendingPurchase inserts a pending purchase transaction keyed by the
// correlation token. The balance is untouched until the purchase resolves.
func (r *LedgerRepository) CreatePendingPurchase(ctx context.Context, userID uint64, credits int64, externalID string) (*entity.Transaction, error) {
	if credits <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if externalID == "" {
		return nil, errs.ErrInvalidExternalID
	}

	transaction, err := entity.NewPendingPurchase(userID, credits, externalID, r.timeProvider)
	if err != nil {
		return nil, err
	}

	transactionModel := model.Transaction{
		UserID:     transaction.UserID,
		Type:       string(transaction.Type),
		Amount:     transaction.Amount,
		Status:     string(transaction.Status),
		ExternalID: transaction.ExternalID,
		CreatedAt:  transaction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate correlation token on pending purchase", map[string]any{
				"user_id":     userID,
				"external_id": externalID,
			})
			return nil, errs.ErrDuplicateExternalID
		}
		return nil, r.wrapError("creating pending purchase", result.Error, userID)
	}

	transaction.ID = transactionModel.ID

	r.logger.Info("Pending purchase created", map[string]any{
		"user_id":     userID,
		"credits":     credits,
		"external_id": externalID,
	})
	return transaction, nil
}

// ResolvePending moves the pending transaction identified by externalID to
// its terminal state, crediting the owning user when the outcome is
// completed. The pending -> completed transition is a conditional update, so
// concurrent redeliveries of the same event cannot double-credit. Transient
// database errors are retried with backoff.
func (r *LedgerRepository) ResolvePending(ctx context.Context, externalID string, outcome persistence.PendingOutcome) (*entity.Transaction, error) {
	var resolved *entity.Transaction

	operation := func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var transactionModel model.Transaction
			result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("external_id = ?", externalID).
				First(&transactionModel)
			if result.Error != nil {
				if errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return errs.ErrTransactionNotFound
				}
				return result.Error
			}

			// Only a pending row resolves. A redelivery racing this call
			// blocks on the row lock, sees the terminal status here, and
			// reports not found instead of touching the balance again.
			if transactionModel.Status != string(entity.StatusPending) {
				return errs.ErrTransactionNotFound
			}

			now := r.timeProvider.Now()

			update := tx.Model(&model.Transaction{}).
				Where("external_id = ? AND status = ?", externalID, string(entity.StatusPending)).
				Updates(map[string]interface{}{
					"status":       string(outcome),
					"processed_at": now,
				})
			if update.Error != nil {
				return update.Error
			}
			if update.RowsAffected == 0 {
				return errs.ErrTransactionNotFound
			}

			if outcome == persistence.OutcomeCompleted {
				userModel, err := r.lockUser(tx, transactionModel.UserID)
				if err != nil {
					return err
				}
				if err := tx.Model(userModel).Updates(map[string]interface{}{
					"balance":    userModel.Balance + transactionModel.Amount,
					"updated_at": now,
				}).Error; err != nil {
					return err
				}
			}

			transactionModel.Status = string(outcome)
			transactionModel.ProcessedAt = &now
			resolved = transactionModelToEntity(&transactionModel)
			return nil
		})
	}

	err := database.RetryOnTransientError(ctx, r.retryConfig, operation, r.logger)
	if err != nil {
		return nil, r.wrapError("resolving pending purchase", err, 0)
	}

	r.logger.Info("Pending purchase resolved", map[string]any{
		"external_id": externalID,
		"outcome":     string(outcome),
		"user_id":     resolved.UserID,
		"status":      string(resolved.Status),
	})
	return resolved, nil
}
