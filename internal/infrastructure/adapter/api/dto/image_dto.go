package dto

// GenerateRequest represents the API request for text-to-image generation
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// ImageResponse represents a completed image operation
type ImageResponse struct {
	URL        string `json:"url"`
	Cost       int64  `json:"cost"`
	NewBalance int64  `json:"newBalance"`
}
