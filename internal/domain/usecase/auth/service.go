package auth

import (
	"context"
	"errors"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
	"github.com/artify-ai/artify-backend/internal/domain/port/security"
)

// Session is the result of a successful authentication
type Session struct {
	Token string
	User  *entity.User
}

// Service implements registration and login flows
type Service struct {
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.TokenIssuer
	identity     provider.IdentityProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new auth service
func NewService(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenIssuer,
	identity provider.IdentityProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		identity:     identity,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a new account with a zero balance and returns a session
//
// Possible errors:
// - ErrInvalidEmail: the email is empty or malformed
// - ErrInvalidCredentials: the password is empty
// - ErrDuplicateUser: the email is already registered
func (s *Service) Register(ctx context.Context, email, password string) (*Session, error) {
	if password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(email, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return &Session{Token: token, User: user}, nil
}

// Login authenticates with email and password and returns a session
//
// Possible errors:
// - ErrInvalidCredentials: the email is unknown or the password does not match
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	// Identity-provider accounts have no password to compare against.
	if user.PasswordHash == "" {
		return nil, errs.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, User: user}, nil
}

// LoginWithIdentity authenticates with an externally-issued identity token,
// creating the account on first login
//
// Possible errors:
// - ErrInvalidIdentityToken: the token failed verification
// - ErrProvider: the identity provider could not be reached
func (s *Service) LoginWithIdentity(ctx context.Context, externalToken string) (*Session, error) {
	ident, err := s.identity.VerifyToken(ctx, externalToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, ident.Email)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			return nil, err
		}

		user, err = entity.NewUser(ident.Email, "", s.timeProvider)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			// Lost a race with a concurrent first login for the same email.
			if errors.Is(err, errs.ErrDuplicateUser) {
				user, err = s.userRepo.GetByEmail(ctx, ident.Email)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		} else {
			s.logger.Info("User created from external identity", map[string]any{
				"user_id": user.ID,
				"email":   user.Email,
			})
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, User: user}, nil
}
