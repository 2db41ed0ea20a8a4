// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the contracts the API handlers depend on

package interfaces

import (
	"context"

	"linkpost-api/core/domain"
)

// ExtractorService derives a bounded digest from a webpage
type ExtractorService interface {
	Extract(ctx context.Context, url string) (*domain.PageDigest, error)
}

// GeneratorService turns a digest into three post variants
type GeneratorService interface {
	Generate(ctx context.Context, digest *domain.PageDigest, instruction string, tone domain.Tone) ([]domain.PostVariant, error)
}

// PublisherService publishes finished posts to the social network
type PublisherService interface {
	EnsureAuthenticated(ctx context.Context) bool
	Publish(ctx context.Context, text string) (*domain.PublishResult, error)
}

// FeedbackService receives ratings and comments on variants
type FeedbackService interface {
	Record(ctx context.Context, record domain.FeedbackRecord) error
}

// GenerationStore keeps generation results for a short time so a variant's
// ordinal index can be resolved later
type GenerationStore interface {
	Save(ctx context.Context, generation *domain.Generation) error
	Get(ctx context.Context, id string) (*domain.Generation, error)
}
