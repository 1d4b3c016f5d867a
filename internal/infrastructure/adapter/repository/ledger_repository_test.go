package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
)

func TestCreditLostIdempotencyRace(t *testing.T) {
	repo := NewLedgerRepository(nil, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

	duplicateKey := errors.New(`duplicate key value violates unique constraint "idx_transactions_external_id"`)

	t.Run("duplicate token insert is the replay path", func(t *testing.T) {
		assert.True(t, repo.creditLostIdempotencyRace(duplicateKey, "chk_abc"))
	})

	t.Run("untagged credits never classify as replay", func(t *testing.T) {
		assert.False(t, repo.creditLostIdempotencyRace(duplicateKey, ""))
	})

	t.Run("other database errors stay failures", func(t *testing.T) {
		assert.False(t, repo.creditLostIdempotencyRace(errors.New("connection reset by peer"), "chk_abc"))
		assert.False(t, repo.creditLostIdempotencyRace(errors.New("record not found"), "chk_abc"))
	})
}
