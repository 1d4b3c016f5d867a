package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coremocks "github.com/artify-ai/artify-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, serverURL string) *ImageProvider {
	t.Helper()
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	p, err := New(Config{APIKey: "sk-test", BaseURL: serverURL}, mockLogger)
	require.NoError(t, err)
	return p
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.png")
	require.NoError(t, os.WriteFile(path, []byte("fake-png-bytes"), 0o600))
	return path
}

func TestNew(t *testing.T) {
	t.Run("Missing API key", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)

		p, err := New(Config{}, mockLogger)

		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrConfiguration)
	})

	t.Run("Defaults applied", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)

		p, err := New(Config{APIKey: "sk-test"}, mockLogger)

		require.NoError(t, err)
		assert.Equal(t, defaultBaseURL, p.config.BaseURL)
		assert.Equal(t, "1024x1024", p.config.Size)
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful generation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/images/generations", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Write([]byte(`{"data":[{"url":"https://img.example.com/out.png"}]}`))
		}))
		defer server.Close()

		p := newProvider(t, server.URL)
		url, err := p.Generate(ctx, "a red bicycle")

		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/out.png", url)
	})

	t.Run("API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"requests"}}`))
		}))
		defer server.Close()

		p := newProvider(t, server.URL)
		url, err := p.Generate(ctx, "a red bicycle")

		assert.Empty(t, url)
		assert.True(t, errs.IsProviderError(err))
		assert.Contains(t, err.Error(), "rate limit exceeded")
	})

	t.Run("Empty image response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		p := newProvider(t, server.URL)
		url, err := p.Generate(ctx, "a red bicycle")

		assert.Empty(t, url)
		assert.True(t, errs.IsProviderError(err))
	})

	t.Run("Unreachable server", func(t *testing.T) {
		p := newProvider(t, "http://127.0.0.1:1")

		url, err := p.Generate(ctx, "a red bicycle")

		assert.Empty(t, url)
		assert.True(t, errs.IsProviderError(err))
	})
}

func TestEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("Multipart form carries image and prompt", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/images/edits", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "a blue sky", r.FormValue("prompt"))
			_, header, err := r.FormFile("image")
			require.NoError(t, err)
			assert.Equal(t, "source.png", header.Filename)
			w.Write([]byte(`{"data":[{"url":"https://img.example.com/edited.png"}]}`))
		}))
		defer server.Close()

		p := newProvider(t, server.URL)
		url, err := p.Edit(ctx, writeTempImage(t), "a blue sky")

		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/edited.png", url)
	})

	t.Run("Missing source file", func(t *testing.T) {
		p := newProvider(t, "http://unused")

		url, err := p.Edit(ctx, "/does/not/exist.png", "a blue sky")

		assert.Empty(t, url)
		assert.True(t, errs.IsProviderError(err))
	})
}

func TestVariation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/variations", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("image")
		require.NoError(t, err)
		w.Write([]byte(`{"data":[{"url":"https://img.example.com/variant.png"}]}`))
	}))
	defer server.Close()

	p := newProvider(t, server.URL)
	url, err := p.Variation(context.Background(), writeTempImage(t))

	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/variant.png", url)
}
