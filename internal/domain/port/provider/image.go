package provider

import "context"

// ImageProvider is the external image-generation collaborator. Each call
// returns the URL of the produced image or a provider error; the caller
// decides whether and when to charge for it.
type ImageProvider interface {
	// Generate creates an image from a text prompt
	Generate(ctx context.Context, prompt string) (string, error)

	// Edit modifies the image at sourcePath according to the prompt
	Edit(ctx context.Context, sourcePath, prompt string) (string, error)

	// Variation produces a variation of the image at sourcePath
	Variation(ctx context.Context, sourcePath string) (string, error)
}
