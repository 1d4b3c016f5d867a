package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Config holds OpenAI image provider configuration
type Config struct {
	APIKey  string
	BaseURL string
	Size    string
}

// ImageProvider implements provider.ImageProvider against the OpenAI image
// endpoints
type ImageProvider struct {
	config Config
	client *http.Client
	logger coreport.Logger
}

// New creates a new OpenAI image provider
func New(config Config, logger coreport.Logger) (*ImageProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: openai api key is required", errs.ErrConfiguration)
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Size == "" {
		config.Size = "1024x1024"
	}

	return &ImageProvider{
		config: config,
		client: &http.Client{Timeout: 120 * time.Second},
		logger: logger,
	}, nil
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate creates an image from a text prompt
func (p *ImageProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"prompt": prompt,
		"n":      1,
		"size":   p.config.Size,
	})
	if err != nil {
		return "", errs.NewProviderError("openai", "generate", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return "", errs.NewProviderError("openai", "generate", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return p.do(req, "generate")
}

// Edit modifies the image at sourcePath according to the prompt
func (p *ImageProvider) Edit(ctx context.Context, sourcePath, prompt string) (string, error) {
	body, contentType, err := p.multipartBody(sourcePath, map[string]string{
		"prompt": prompt,
		"n":      "1",
		"size":   p.config.Size,
	})
	if err != nil {
		return "", errs.NewProviderError("openai", "edit", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseURL+"/images/edits", body)
	if err != nil {
		return "", errs.NewProviderError("openai", "edit", err)
	}
	req.Header.Set("Content-Type", contentType)

	return p.do(req, "edit")
}

// Variation produces a variation of the image at sourcePath
func (p *ImageProvider) Variation(ctx context.Context, sourcePath string) (string, error) {
	body, contentType, err := p.multipartBody(sourcePath, map[string]string{
		"n":    "1",
		"size": p.config.Size,
	})
	if err != nil {
		return "", errs.NewProviderError("openai", "variation", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseURL+"/images/variations", body)
	if err != nil {
		return "", errs.NewProviderError("openai", "variation", err)
	}
	req.Header.Set("Content-Type", contentType)

	return p.do(req, "variation")
}

// multipartBody builds a multipart form with the image file and extra fields
func (p *ImageProvider) multipartBody(sourcePath string, fields map[string]string) (io.Reader, string, error) {
	file, err := os.Open(sourcePath)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filepath.Base(sourcePath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}

func (p *ImageProvider) do(req *http.Request, operation string) (string, error) {
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errs.NewProviderError("openai", operation, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewProviderError("openai", operation, err)
	}

	var parsed imageResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", errs.NewProviderError("openai", operation, fmt.Errorf("decoding response: %s", err.Error()))
	}

	if resp.StatusCode != http.StatusOK {
		message := resp.Status
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		return "", errs.NewProviderError("openai", operation, fmt.Errorf("api error: %s", message))
	}

	if len(parsed.Data) == 0 || parsed.Data[0].URL == "" {
		return "", errs.NewProviderError("openai", operation, fmt.Errorf("empty image response"))
	}

	p.logger.Debug("Image operation completed", map[string]any{
		"operation": operation,
		"provider":  "openai",
	})
	return parsed.Data[0].URL, nil
}
