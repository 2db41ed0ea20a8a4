// ABOUTME: Content generator service that turns a page digest into three post variants
// ABOUTME: Builds one prompt, calls the configured LLM once and parses its answer strictly

package generator

import (
	"context"
	"time"

	"linkpost-api/core/domain"
	"linkpost-api/core/errors"
	"linkpost-api/core/interfaces"
)

// FailureMessage is reported to callers for every generation failure
const FailureMessage = "Failed to generate tweets"

const (
	defaultTemperature = 0.8
	defaultMaxTokens   = 500
)

// Service generates post variants
type Service struct {
	deps        interfaces.Dependencies
	temperature float64
	maxTokens   int
}

// Option configures a Service
type Option func(*Service)

// WithTemperature sets the sampling temperature sent to the model
func WithTemperature(temperature float64) Option {
	return func(s *Service) {
		if temperature > 0 {
			s.temperature = temperature
		}
	}
}

// WithMaxTokens bounds the model's output length
func WithMaxTokens(maxTokens int) Option {
	return func(s *Service) {
		if maxTokens > 0 {
			s.maxTokens = maxTokens
		}
	}
}

// NewService creates a new generator service
func NewService(deps interfaces.Dependencies, opts ...Option) *Service {
	s := &Service{
		deps:        deps,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate asks the model for exactly three variants in the order concise,
// detailed, casual. Either all three are returned or a GenerationError.
func (s *Service) Generate(ctx context.Context, digest *domain.PageDigest, instruction string, tone domain.Tone) ([]domain.PostVariant, error) {
	prompt := BuildPrompt(digest, instruction, tone, s.temperature, s.maxTokens)

	start := time.Now()
	raw, err := s.deps.LLM.Complete(ctx, prompt)
	if err != nil {
		s.deps.Logger.Error("LLM request failed", map[string]interface{}{
			"provider": s.deps.LLM.Name(),
			"url":      digest.URL,
			"error":    err.Error(),
		})
		return nil, &errors.GenerationError{Message: FailureMessage, Err: err}
	}

	variants, err := ParseVariants(raw)
	if err != nil {
		s.deps.Logger.Error("Unparseable LLM output", map[string]interface{}{
			"provider": s.deps.LLM.Name(),
			"url":      digest.URL,
			"error":    err.Error(),
			"output":   domain.TruncateRunes(raw, 500),
		})
		return nil, &errors.GenerationError{Message: FailureMessage, Err: err}
	}

	s.deps.Logger.Info("Variants generated", map[string]interface{}{
		"provider":    s.deps.LLM.Name(),
		"url":         digest.URL,
		"tone":        string(tone),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return variants, nil
}
