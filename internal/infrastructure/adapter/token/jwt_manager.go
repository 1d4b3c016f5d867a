package token

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
)

// JWTManager implements security.TokenIssuer with HS256-signed tokens
type JWTManager struct {
	secret       []byte
	ttl          coreport.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTManager creates a new JWT manager. The signing secret is mandatory.
func NewJWTManager(secret string, ttl coreport.Duration, timeProvider coreport.TimeProvider) (*JWTManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: jwt secret is required", errs.ErrConfiguration)
	}
	if ttl <= 0 {
		ttl = 24 * coreport.Hour
	}
	return &JWTManager{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue creates a signed session token for the user
func (m *JWTManager) Issue(user *entity.User) (string, error) {
	now := m.timeProvider.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl.Std())),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Verify checks a session token and returns the user ID it was issued for
func (m *JWTManager) Verify(tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.timeProvider.Now))

	if err != nil || !token.Valid {
		return 0, errs.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, errs.ErrInvalidCredentials
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, errs.ErrInvalidCredentials
	}
	return userID, nil
}
