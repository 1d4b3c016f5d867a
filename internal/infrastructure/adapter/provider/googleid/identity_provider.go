package googleid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
)

const defaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Config holds Google identity provider configuration
type Config struct {
	ClientID     string
	TokenInfoURL string
}

// IdentityProvider implements provider.IdentityProvider by validating ID
// tokens against Google's tokeninfo endpoint
type IdentityProvider struct {
	config Config
	client *http.Client
	logger coreport.Logger
}

// New creates a new Google identity provider
func New(config Config, logger coreport.Logger) *IdentityProvider {
	if config.TokenInfoURL == "" {
		config.TokenInfoURL = defaultTokenInfoURL
	}
	return &IdentityProvider{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type tokenInfo struct {
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Audience      string `json:"aud"`
	Error         string `json:"error_description"`
}

// VerifyToken checks the presented ID token and returns the verified identity
func (p *IdentityProvider) VerifyToken(ctx context.Context, token string) (*provider.Identity, error) {
	if token == "" {
		return nil, errs.ErrInvalidIdentityToken
	}

	endpoint := p.config.TokenInfoURL + "?id_token=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.NewProviderError("google", "verify token", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errs.NewProviderError("google", "verify token", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewProviderError("google", "verify token", err)
	}

	var info tokenInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, errs.NewProviderError("google", "verify token", err)
	}

	if resp.StatusCode != http.StatusOK {
		p.logger.Warn("Identity token rejected", map[string]any{
			"status": resp.StatusCode,
			"reason": info.Error,
		})
		return nil, errs.ErrInvalidIdentityToken
	}

	if info.Email == "" || info.EmailVerified != "true" {
		return nil, errs.ErrInvalidIdentityToken
	}

	// The token must have been minted for this application
	if p.config.ClientID != "" && info.Audience != p.config.ClientID {
		return nil, fmt.Errorf("%w: audience mismatch", errs.ErrInvalidIdentityToken)
	}

	return &provider.Identity{Email: info.Email}, nil
}
