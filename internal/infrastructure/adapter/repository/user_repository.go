package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	user := &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	user.SetBalanceRaw(m.Balance)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return userModelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by email, case-insensitive
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting user by email", result.Error, 0)
	}

	return userModelToEntity(&userModel), nil
}

// Create creates a new user and fills in its assigned ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Balance:      user.Balance(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, 0)
	}

	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

// UpdateRole changes a user's role
func (r *UserRepository) UpdateRole(ctx context.Context, id uint64, role entity.Role) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":       string(role),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user role", result.Error, id)
	}

	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// Delete removes a user and all transactions referencing it, in one
// database transaction
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ?", id).Delete(&model.Transaction{})
		if result.Error != nil {
			return result.Error
		}

		result = tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrUserNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return err
		}
		return r.handleDatabaseError("deleting user", err, id)
	}
	return nil
}

// List returns all users ordered by creation time, newest first
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&userModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, 0)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userModelToEntity(&userModels[i]))
	}
	return users, nil
}

// Stats aggregates totals across the ledger
func (r *UserRepository) Stats(ctx context.Context) (*persistence.LedgerStats, error) {
	stats := &persistence.LedgerStats{}

	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Count(&stats.TotalUsers).Error; err != nil {
		return nil, r.handleDatabaseError("counting users", err, 0)
	}

	var totalCredits struct{ Total int64 }
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("COALESCE(SUM(balance), 0) AS total").
		Scan(&totalCredits).Error; err != nil {
		return nil, r.handleDatabaseError("summing balances", err, 0)
	}
	stats.TotalCredits = totalCredits.Total

	if err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("status = ?", string(entity.StatusCompleted)).
		Count(&stats.CompletedTransactions).Error; err != nil {
		return nil, r.handleDatabaseError("counting transactions", err, 0)
	}

	return stats, nil
}
