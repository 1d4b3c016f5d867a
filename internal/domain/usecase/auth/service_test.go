package auth

import (
	"context"
	"testing"
	"time"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
	persistencemocks "github.com/artify-ai/artify-backend/mocks/port/persistence"
	providermocks "github.com/artify-ai/artify-backend/mocks/port/provider"
	securitymocks "github.com/artify-ai/artify-backend/mocks/port/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	userRepo *persistencemocks.MockUserRepository
	hasher   *securitymocks.MockPasswordHasher
	tokens   *securitymocks.MockTokenIssuer
	identity *providermocks.MockIdentityProvider
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

func newService(t *testing.T) (*Service, *authMocks) {
	m := &authMocks{
		userRepo: persistencemocks.NewMockUserRepository(t),
		hasher:   securitymocks.NewMockPasswordHasher(t),
		tokens:   securitymocks.NewMockTokenIssuer(t),
		identity: providermocks.NewMockIdentityProvider(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}
	m.time.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return NewService(m.userRepo, m.hasher, m.tokens, m.identity, m.time, m.logger), m
}

func existingUser(email, passwordHash string) *entity.User {
	return &entity.User{ID: 42, Email: email, PasswordHash: passwordHash, Role: entity.RoleUser}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration", func(t *testing.T) {
		svc, m := newService(t)

		m.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@example.com" && u.PasswordHash == "hashed" && u.Balance() == 0
		})).Return(nil).Once()
		m.tokens.EXPECT().Issue(mock.Anything).Return("jwt-token", nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		session, err := svc.Register(ctx, "alice@example.com", "s3cretpass")

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", session.Token)
		assert.Equal(t, "alice@example.com", session.User.Email)
	})

	t.Run("Empty password", func(t *testing.T) {
		svc, _ := newService(t)

		session, err := svc.Register(ctx, "alice@example.com", "")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Invalid email", func(t *testing.T) {
		svc, m := newService(t)

		m.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil).Once()

		session, err := svc.Register(ctx, "not-an-email", "s3cretpass")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		svc, m := newService(t)

		m.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser).Once()

		session, err := svc.Register(ctx, "alice@example.com", "s3cretpass")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful login", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
			Return(existingUser("alice@example.com", "hashed"), nil).Once()
		m.hasher.EXPECT().Compare("hashed", "s3cretpass").Return(nil).Once()
		m.tokens.EXPECT().Issue(mock.Anything).Return("jwt-token", nil).Once()

		session, err := svc.Login(ctx, "alice@example.com", "s3cretpass")

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", session.Token)
		assert.Equal(t, uint64(42), session.User.ID)
	})

	t.Run("Unknown email maps to invalid credentials", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").
			Return(nil, errs.ErrUserNotFound).Once()

		session, err := svc.Login(ctx, "ghost@example.com", "whatever")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
			Return(existingUser("alice@example.com", "hashed"), nil).Once()
		m.hasher.EXPECT().Compare("hashed", "wrong").Return(errs.ErrInvalidCredentials).Once()

		session, err := svc.Login(ctx, "alice@example.com", "wrong")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Identity-only account has no password", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "sso@example.com").
			Return(existingUser("sso@example.com", ""), nil).Once()

		session, err := svc.Login(ctx, "sso@example.com", "anything")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Database error passes through", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
			Return(nil, errs.ErrDatabaseConnection).Once()

		session, err := svc.Login(ctx, "alice@example.com", "s3cretpass")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestLoginWithIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing account", func(t *testing.T) {
		svc, m := newService(t)

		m.identity.EXPECT().VerifyToken(mock.Anything, "google-token").
			Return(&provider.Identity{Email: "alice@example.com"}, nil).Once()
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
			Return(existingUser("alice@example.com", ""), nil).Once()
		m.tokens.EXPECT().Issue(mock.Anything).Return("jwt-token", nil).Once()

		session, err := svc.LoginWithIdentity(ctx, "google-token")

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", session.Token)
	})

	t.Run("First login creates the account", func(t *testing.T) {
		svc, m := newService(t)

		m.identity.EXPECT().VerifyToken(mock.Anything, "google-token").
			Return(&provider.Identity{Email: "new@example.com"}, nil).Once()
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "new@example.com").
			Return(nil, errs.ErrUserNotFound).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "new@example.com" && u.PasswordHash == ""
		})).Return(nil).Once()
		m.tokens.EXPECT().Issue(mock.Anything).Return("jwt-token", nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		session, err := svc.LoginWithIdentity(ctx, "google-token")

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", session.User.Email)
	})

	t.Run("Concurrent first login falls back to lookup", func(t *testing.T) {
		svc, m := newService(t)

		m.identity.EXPECT().VerifyToken(mock.Anything, "google-token").
			Return(&provider.Identity{Email: "race@example.com"}, nil).Once()
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "race@example.com").
			Return(nil, errs.ErrUserNotFound).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser).Once()
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "race@example.com").
			Return(existingUser("race@example.com", ""), nil).Once()
		m.tokens.EXPECT().Issue(mock.Anything).Return("jwt-token", nil).Once()

		session, err := svc.LoginWithIdentity(ctx, "google-token")

		require.NoError(t, err)
		assert.Equal(t, uint64(42), session.User.ID)
	})

	t.Run("Invalid identity token", func(t *testing.T) {
		svc, m := newService(t)

		m.identity.EXPECT().VerifyToken(mock.Anything, "forged").
			Return(nil, errs.ErrInvalidIdentityToken).Once()

		session, err := svc.LoginWithIdentity(ctx, "forged")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidIdentityToken)
	})
}
