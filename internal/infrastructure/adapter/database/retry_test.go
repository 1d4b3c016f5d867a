package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
)

func TestIsTransientError(t *testing.T) {
	assert.True(t, IsTransientError(errors.New("deadlock detected")))
	assert.True(t, IsTransientError(errors.New("could not serialize access")))
	assert.True(t, IsTransientError(errors.New("read tcp: connection reset by peer")))
	assert.True(t, IsTransientError(errors.New("pq: too many connections")))
	assert.True(t, IsTransientError(errors.New("unexpected EOF")))
	assert.True(t, IsTransientError(errors.New("context deadline exceeded (timeout)")))

	assert.False(t, IsTransientError(nil))
	assert.False(t, IsTransientError(errors.New(`duplicate key value violates unique constraint "idx_transactions_external_id"`)))
	assert.False(t, IsTransientError(errors.New("record not found")))
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0,
	}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 200*time.Millisecond, calculateBackoffWithJitter(1, config))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, config))

	// Capped at MaxInterval regardless of attempt count
	assert.Equal(t, 2*time.Second, calculateBackoffWithJitter(10, config))

	config.JitterFactor = 0.2
	backoff := calculateBackoffWithJitter(0, config)
	assert.GreaterOrEqual(t, backoff, 100*time.Millisecond)
	assert.LessOrEqual(t, backoff, 120*time.Millisecond)
}

func TestRetryOnTransientError(t *testing.T) {
	ctx := context.Background()
	config := RetryConfig{
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
	}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Twice()

		attempts := 0
		err := RetryOnTransientError(ctx, config, func() error {
			attempts++
			if attempts < 3 {
				return errors.New("connection reset by peer")
			}
			return nil
		}, mockLogger)

		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("non-transient error returned immediately", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)

		permanent := errors.New("duplicate key value violates unique constraint")
		attempts := 0
		err := RetryOnTransientError(ctx, config, func() error {
			attempts++
			return permanent
		}, mockLogger)

		assert.Equal(t, permanent, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Times(3)
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		transient := errors.New("connection refused")
		attempts := 0
		err := RetryOnTransientError(ctx, config, func() error {
			attempts++
			return transient
		}, mockLogger)

		assert.Equal(t, transient, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Twice()

		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		err := RetryOnTransientError(canceled, config, func() error {
			return errors.New("connection refused")
		}, mockLogger)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
