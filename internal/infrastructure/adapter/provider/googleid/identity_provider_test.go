package googleid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "id-token-value", r.URL.Query().Get("id_token"))
			w.Write([]byte(`{"email":"alice@example.com","email_verified":"true","aud":"client-123"}`))
		}))
		defer server.Close()

		mockLogger := coremocks.NewMockLogger(t)
		p := New(Config{ClientID: "client-123", TokenInfoURL: server.URL}, mockLogger)

		ident, err := p.VerifyToken(ctx, "id-token-value")

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", ident.Email)
	})

	t.Run("Empty token", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		p := New(Config{}, mockLogger)

		ident, err := p.VerifyToken(ctx, "")

		assert.Nil(t, ident)
		assert.ErrorIs(t, err, errs.ErrInvalidIdentityToken)
	})

	t.Run("Rejected token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error_description":"Invalid Value"}`))
		}))
		defer server.Close()

		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()
		p := New(Config{TokenInfoURL: server.URL}, mockLogger)

		ident, err := p.VerifyToken(ctx, "forged")

		assert.Nil(t, ident)
		assert.ErrorIs(t, err, errs.ErrInvalidIdentityToken)
	})

	t.Run("Unverified email", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"email":"alice@example.com","email_verified":"false","aud":"client-123"}`))
		}))
		defer server.Close()

		mockLogger := coremocks.NewMockLogger(t)
		p := New(Config{ClientID: "client-123", TokenInfoURL: server.URL}, mockLogger)

		ident, err := p.VerifyToken(ctx, "id-token-value")

		assert.Nil(t, ident)
		assert.ErrorIs(t, err, errs.ErrInvalidIdentityToken)
	})

	t.Run("Audience mismatch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"email":"alice@example.com","email_verified":"true","aud":"someone-else"}`))
		}))
		defer server.Close()

		mockLogger := coremocks.NewMockLogger(t)
		p := New(Config{ClientID: "client-123", TokenInfoURL: server.URL}, mockLogger)

		ident, err := p.VerifyToken(ctx, "id-token-value")

		assert.Nil(t, ident)
		assert.ErrorIs(t, err, errs.ErrInvalidIdentityToken)
		assert.Contains(t, err.Error(), "audience mismatch")
	})

	t.Run("No client ID configured skips audience check", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"email":"alice@example.com","email_verified":"true","aud":"anything"}`))
		}))
		defer server.Close()

		mockLogger := coremocks.NewMockLogger(t)
		p := New(Config{TokenInfoURL: server.URL}, mockLogger)

		ident, err := p.VerifyToken(ctx, "id-token-value")

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", ident.Email)
	})

	t.Run("Unreachable endpoint", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		p := New(Config{TokenInfoURL: "http://127.0.0.1:1"}, mockLogger)

		ident, err := p.VerifyToken(ctx, "id-token-value")

		assert.Nil(t, ident)
		assert.True(t, errs.IsProviderError(err))
	})
}
