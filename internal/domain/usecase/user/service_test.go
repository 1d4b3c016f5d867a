package user

import (
	"context"
	"testing"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
	persistencemocks "github.com/artify-ai/artify-backend/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing user", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxnRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(42)).
			Return(&entity.User{ID: 42, Email: "alice@example.com"}, nil).Once()

		svc := NewService(mockUserRepo, mockTxnRepo, mockLogger)
		user, err := svc.Profile(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), user.ID)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxnRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(42)).
			Return(nil, errs.ErrUserNotFound).Once()

		svc := NewService(mockUserRepo, mockTxnRepo, mockLogger)
		user, err := svc.Profile(ctx, 42)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := persistencemocks.NewMockUserRepository(t)
	mockTxnRepo := persistencemocks.NewMockTransactionRepository(t)
	mockLogger := coremocks.NewMockLogger(t)

	transactions := []*entity.Transaction{
		{ID: 2, UserID: 42, Amount: -1},
		{ID: 1, UserID: 42, Amount: 100},
	}
	mockTxnRepo.EXPECT().ListByUser(mock.Anything, uint64(42)).Return(transactions, nil).Once()

	svc := NewService(mockUserRepo, mockTxnRepo, mockLogger)
	got, err := svc.History(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, transactions, got)
}
