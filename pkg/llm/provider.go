package llm

import "context"

// Provider defines the contract for the inference backend. Both operations
// are best-effort from the caller's point of view: errors are mapped to fixed
// fallback replies at the service layer, never surfaced to the user raw.
type Provider interface {
	// Generate answers a text query grounded by a system instruction.
	Generate(ctx context.Context, query string, systemInstruction string) (string, error)

	// AnalyzeImage runs vision inference over an image (data URI) plus the
	// user's description of it.
	AnalyzeImage(ctx context.Context, imageDataURI string, description string) (string, error)
}
