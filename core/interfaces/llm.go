package interfaces

import "context"

// Prompt is a single-turn request to a text-generation model
type Prompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// LLMClient abstracts a text-generation provider
type LLMClient interface {
	// Complete sends the prompt and returns the model's raw text
	Complete(ctx context.Context, prompt Prompt) (string, error)

	// Name identifies the provider and model for logging
	Name() string
}
