// ABOUTME: Feedback sink that logs ratings and comments on generated variants
// ABOUTME: Nothing is stored; every record is acknowledged

package feedback

import (
	"context"

	"linkpost-api/core/domain"
	"linkpost-api/core/interfaces"
)

// Service records feedback as a log line
type Service struct {
	deps        interfaces.Dependencies
	generations interfaces.GenerationStore
}

// NewService creates a feedback service. generations may be nil, in which
// case variants are never resolved.
func NewService(deps interfaces.Dependencies, generations interfaces.GenerationStore) *Service {
	return &Service{
		deps:        deps,
		generations: generations,
	}
}

// Record logs the feedback. The index is not range-checked and the call
// always succeeds.
func (s *Service) Record(ctx context.Context, record domain.FeedbackRecord) error {
	fields := map[string]interface{}{
		"generation_id": record.GenerationID,
		"index":         record.Index,
		"rating":        string(record.Rating),
		"comment":       record.Comment,
	}

	if variant, ok := s.resolve(ctx, record); ok {
		fields["style"] = string(variant.Style)
		fields["text"] = variant.Text
	} else {
		fields["resolved"] = false
	}

	s.deps.Logger.Info("Feedback received", fields)
	return nil
}

func (s *Service) resolve(ctx context.Context, record domain.FeedbackRecord) (domain.PostVariant, bool) {
	if s.generations == nil || record.GenerationID == "" {
		return domain.PostVariant{}, false
	}

	generation, err := s.generations.Get(ctx, record.GenerationID)
	if err != nil {
		s.deps.Logger.Debug("Feedback generation not resolvable", map[string]interface{}{
			"generation_id": record.GenerationID,
			"error":         err.Error(),
		})
		return domain.PostVariant{}, false
	}

	return generation.Variant(record.Index)
}
