package ai

import (
	"context"
)

// NarrativeProvider defines the contract for generative day-plan providers.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type NarrativeProvider interface {
	// GenerateDays sends a fully assembled prompt and returns the structured
	// day array the model produced. Callers own prompt construction and any
	// repair of the returned shape; this layer only guarantees parsed JSON.
	GenerateDays(ctx context.Context, prompt string) ([]GeneratedDay, error)
}
