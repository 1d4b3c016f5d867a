package entity

import (
	"testing"
	"time"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful user creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("alice@example.com", "hashed", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "hashed", user.PasswordHash)
		assert.Equal(t, RoleUser, user.Role)
		assert.Equal(t, int64(0), user.Balance())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Email is normalized", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("  Bob@Example.COM ", "hashed", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", user.Email)
	})

	t.Run("Empty email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("", "hashed", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})

	t.Run("Email without at sign", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("not-an-email", "hashed", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})
}

func TestUserBalance(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	laterTime := fixedTime.Add(time.Hour)

	newUser := func(t *testing.T, balance int64) (*User, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		user, err := NewUser("alice@example.com", "hashed", mockTime)
		require.NoError(t, err)
		user.SetBalanceRaw(balance)
		return user, mockTime
	}

	t.Run("CanAfford", func(t *testing.T) {
		user, _ := newUser(t, 10)

		assert.True(t, user.CanAfford(10))
		assert.True(t, user.CanAfford(1))
		assert.False(t, user.CanAfford(11))
	})

	t.Run("ApplyCredit increases balance", func(t *testing.T) {
		user, mockTime := newUser(t, 5)
		mockTime.EXPECT().Now().Return(laterTime).Once()

		err := user.ApplyCredit(3, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(8), user.Balance())
		assert.Equal(t, laterTime, user.UpdatedAt)
	})

	t.Run("ApplyCredit rejects negative amount", func(t *testing.T) {
		user, mockTime := newUser(t, 5)

		err := user.ApplyCredit(-1, mockTime)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.Equal(t, int64(5), user.Balance())
	})

	t.Run("ApplyDebit decreases balance", func(t *testing.T) {
		user, mockTime := newUser(t, 5)
		mockTime.EXPECT().Now().Return(laterTime).Once()

		err := user.ApplyDebit(5, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Balance())
	})

	t.Run("ApplyDebit rejects overdraft", func(t *testing.T) {
		user, mockTime := newUser(t, 5)

		err := user.ApplyDebit(6, mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(5), user.Balance())
	})

	t.Run("ApplyDebit rejects negative amount", func(t *testing.T) {
		user, mockTime := newUser(t, 5)

		err := user.ApplyDebit(-1, mockTime)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("SetBalanceRaw does not touch UpdatedAt", func(t *testing.T) {
		user, _ := newUser(t, 0)
		before := user.UpdatedAt

		user.SetBalanceRaw(42)

		assert.Equal(t, int64(42), user.Balance())
		assert.Equal(t, before, user.UpdatedAt)
	})
}

func TestUserIsAdmin(t *testing.T) {
	user := &User{Role: RoleUser}
	admin := &User{Role: RoleAdmin}

	assert.False(t, user.IsAdmin())
	assert.True(t, admin.IsAdmin())
}
