package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainErr "github.com/artify-ai/artify-backend/internal/domain/error"
)

func TestMapError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"nil error", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{
			"duplicate external id",
			errors.New(`duplicate key value violates unique constraint "idx_transactions_external_id"`),
			domainErr.ErrDuplicateExternalID,
		},
		{
			"duplicate email",
			errors.New(`duplicate key value violates unique constraint "idx_users_email"`),
			domainErr.ErrDuplicateUser,
		},
		{
			"balance check constraint",
			errors.New(`new row for relation "users" violates check constraint "chk_users_balance"`),
			domainErr.ErrInsufficientBalance,
		},
		{"connection refused", errors.New("dial tcp: connection refused"), domainErr.ErrDatabaseConnection},
		{"unrecognized error", errors.New("something exploded"), domainErr.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mapper.MapError(tt.err, "test")
			if tt.expected == nil {
				assert.NoError(t, result)
				return
			}
			assert.ErrorIs(t, result, tt.expected)
		})
	}

	t.Run("timeout wraps with operation name", func(t *testing.T) {
		result := mapper.MapError(errors.New("context deadline exceeded"), "debit")
		assert.ErrorIs(t, result, domainErr.ErrDatabaseConnection)
		assert.Contains(t, result.Error(), "debit")
	})
}

func TestMapEntityNotFoundError(t *testing.T) {
	mapper := NewErrorMapper()

	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeUser), domainErr.ErrUserNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeTransaction), domainErr.ErrTransactionNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityType("other")), domainErr.ErrNotFound)
	assert.NoError(t, mapper.MapEntityNotFoundError(nil, EntityTypeUser))

	// Non-not-found errors fall through to the general mapping
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(errors.New("connection refused"), EntityTypeUser), domainErr.ErrDatabaseConnection)
}
