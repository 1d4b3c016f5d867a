package admin

import (
	"context"
	"testing"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
	persistencemocks "github.com/artify-ai/artify-backend/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*persistencemocks.MockUserRepository, *persistencemocks.MockLedgerStore, *coremocks.MockLogger, *Service) {
	mockRepo := persistencemocks.NewMockUserRepository(t)
	mockLedger := persistencemocks.NewMockLedgerStore(t)
	mockLogger := coremocks.NewMockLogger(t)
	return mockRepo, mockLedger, mockLogger, NewService(mockRepo, mockLedger, mockLogger)
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	mockRepo, _, _, svc := setup(t)

	users := []*entity.User{{ID: 2}, {ID: 1}}
	mockRepo.EXPECT().List(mock.Anything).Return(users, nil).Once()

	got, err := svc.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	mockRepo, _, _, svc := setup(t)

	stats := &persistence.LedgerStats{TotalUsers: 3, TotalCredits: 120, CompletedTransactions: 9}
	mockRepo.EXPECT().Stats(mock.Anything).Return(stats, nil).Once()

	got, err := svc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful deletion", func(t *testing.T) {
		mockRepo, _, mockLogger, svc := setup(t)

		mockRepo.EXPECT().Delete(mock.Anything, uint64(7)).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		assert.NoError(t, svc.DeleteUser(ctx, 7))
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockRepo, _, _, svc := setup(t)

		mockRepo.EXPECT().Delete(mock.Anything, uint64(7)).Return(errs.ErrUserNotFound).Once()

		assert.ErrorIs(t, svc.DeleteUser(ctx, 7), errs.ErrUserNotFound)
	})
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("Promote to admin", func(t *testing.T) {
		mockRepo, _, mockLogger, svc := setup(t)

		mockRepo.EXPECT().UpdateRole(mock.Anything, uint64(7), entity.RoleAdmin).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		assert.NoError(t, svc.UpdateRole(ctx, 7, entity.RoleAdmin))
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		_, _, _, svc := setup(t)

		err := svc.UpdateRole(ctx, 7, entity.Role("superuser"))

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockRepo, _, _, svc := setup(t)

		mockRepo.EXPECT().UpdateRole(mock.Anything, uint64(7), entity.RoleUser).
			Return(errs.ErrUserNotFound).Once()

		assert.ErrorIs(t, svc.UpdateRole(ctx, 7, entity.RoleUser), errs.ErrUserNotFound)
	})
}

func TestGiftCredits(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful gift", func(t *testing.T) {
		_, mockLedger, mockLogger, svc := setup(t)

		mockLedger.EXPECT().Credit(mock.Anything, uint64(7), int64(50), entity.TypeAdminGift, "").
			Return(int64(75), nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		balance, err := svc.GiftCredits(ctx, 7, 50)

		require.NoError(t, err)
		assert.Equal(t, int64(75), balance)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		_, _, _, svc := setup(t)

		_, err := svc.GiftCredits(ctx, 7, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, mockLedger, _, svc := setup(t)

		mockLedger.EXPECT().Credit(mock.Anything, uint64(7), int64(50), entity.TypeAdminGift, "").
			Return(int64(0), errs.ErrUserNotFound).Once()

		_, err := svc.GiftCredits(ctx, 7, 50)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
