package entity

import (
	"testing"
	"time"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPendingPurchase(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewPendingPurchase(7, 100, "chk_abc", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), txn.UserID)
		assert.Equal(t, TypePurchase, txn.Type)
		assert.Equal(t, int64(100), txn.Amount)
		assert.Equal(t, StatusPending, txn.Status)
		assert.Equal(t, "chk_abc", txn.ExternalIDValue())
		assert.Equal(t, fixedTime, txn.CreatedAt)
		assert.Nil(t, txn.ProcessedAt)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewPendingPurchase(0, 100, "chk_abc", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Non-positive credits", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewPendingPurchase(7, 0, "chk_abc", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Empty correlation token", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewPendingPurchase(7, 100, "", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidExternalID)
	})
}

func TestNewCompletedSpend(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Amount is negated", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewCompletedSpend(7, 1, TypeImageGeneration, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(-1), txn.Amount)
		assert.Equal(t, StatusCompleted, txn.Status)
		assert.False(t, txn.IsCredit())
		require.NotNil(t, txn.ProcessedAt)
		assert.Equal(t, fixedTime, *txn.ProcessedAt)
	})

	t.Run("Non-positive cost", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewCompletedSpend(7, -1, TypeImageGeneration, mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestTransactionStatusTransitions(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newPending := func(t *testing.T) (*Transaction, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		txn, err := NewPendingPurchase(7, 100, "chk_abc", mockTime)
		require.NoError(t, err)
		return txn, mockTime
	}

	t.Run("Pending to completed", func(t *testing.T) {
		txn, mockTime := newPending(t)

		err := txn.MarkCompleted(mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, txn.Status)
		require.NotNil(t, txn.ProcessedAt)
	})

	t.Run("Completed is idempotent", func(t *testing.T) {
		txn, mockTime := newPending(t)
		require.NoError(t, txn.MarkCompleted(mockTime))

		err := txn.MarkCompleted(mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, txn.Status)
	})

	t.Run("Pending to failed", func(t *testing.T) {
		txn, mockTime := newPending(t)

		err := txn.MarkFailed(mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusFailed, txn.Status)
	})

	t.Run("Completed never regresses to failed", func(t *testing.T) {
		txn, mockTime := newPending(t)
		require.NoError(t, txn.MarkCompleted(mockTime))

		err := txn.MarkFailed(mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, StatusCompleted, txn.Status)
	})

	t.Run("Failed cannot complete", func(t *testing.T) {
		txn, mockTime := newPending(t)
		require.NoError(t, txn.MarkFailed(mockTime))

		err := txn.MarkCompleted(mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, StatusFailed, txn.Status)
	})
}

func TestTransactionIsCredit(t *testing.T) {
	assert.True(t, (&Transaction{Amount: 100}).IsCredit())
	assert.False(t, (&Transaction{Amount: -1}).IsCredit())
	assert.False(t, (&Transaction{Amount: 0}).IsCredit())
}

func TestExternalIDValue(t *testing.T) {
	token := "chk_abc"
	assert.Equal(t, "chk_abc", (&Transaction{ExternalID: &token}).ExternalIDValue())
	assert.Equal(t, "", (&Transaction{}).ExternalIDValue())
}
