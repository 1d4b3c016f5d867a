package security

import "github.com/artify-ai/artify-backend/internal/domain/entity"

// TokenIssuer issues and verifies session tokens
type TokenIssuer interface {
	// Issue creates a signed session token for the user
	Issue(user *entity.User) (string, error)

	// Verify checks a session token and returns the user ID it was issued for
	//
	// Possible errors:
	// - ErrInvalidCredentials: the token is expired, malformed, or forged
	Verify(token string) (uint64, error)
}

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
