package provider

import "context"

// Identity is a verified external identity
type Identity struct {
	Email string
}

// IdentityProvider verifies externally-issued login tokens
type IdentityProvider interface {
	// VerifyToken checks the presented token and returns the verified identity
	//
	// Possible errors:
	// - ErrInvalidIdentityToken: the token failed verification
	// - ErrProvider: the provider could not be reached
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}
