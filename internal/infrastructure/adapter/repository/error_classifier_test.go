package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("duplicate key errors", func(t *testing.T) {
		assert.True(t, classifier.IsDuplicateKeyError(errors.New(`duplicate key value violates unique constraint "idx_transactions_external_id"`)))
		assert.True(t, classifier.IsDuplicateKeyError(errors.New("UNIQUE constraint failed: users.email")))
		assert.False(t, classifier.IsDuplicateKeyError(errors.New("connection reset by peer")))
		assert.False(t, classifier.IsDuplicateKeyError(nil))
	})

	t.Run("transient errors", func(t *testing.T) {
		assert.True(t, classifier.IsTransientError(errors.New("read tcp: connection reset by peer")))
		assert.True(t, classifier.IsTransientError(errors.New("dial tcp: connection refused")))
		assert.True(t, classifier.IsTransientError(errors.New("unexpected EOF")))
		assert.False(t, classifier.IsTransientError(errors.New("duplicate key value")))
		assert.False(t, classifier.IsTransientError(nil))
	})

	t.Run("lock errors", func(t *testing.T) {
		assert.True(t, classifier.IsLockError(errors.New("deadlock detected")))
		assert.True(t, classifier.IsLockError(errors.New("ERROR: could not serialize access due to concurrent update")))
		assert.False(t, classifier.IsLockError(errors.New("timeout")))
	})

	t.Run("check constraint errors", func(t *testing.T) {
		assert.True(t, classifier.IsCheckConstraintError(errors.New(`new row for relation "users" violates check constraint "chk_users_balance"`)))
		assert.False(t, classifier.IsCheckConstraintError(errors.New("duplicate key value")))
	})
}
