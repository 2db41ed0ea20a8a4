package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"linkpost-api/api/dto/mappers"
	"linkpost-api/api/dto/requests"
	"linkpost-api/api/dto/responses"
	"linkpost-api/core/interfaces"
)

// FeedbackHandler handles variant feedback. Every request is acknowledged.
type FeedbackHandler struct {
	feedback interfaces.FeedbackService
	logger   interfaces.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedback interfaces.FeedbackService, logger interfaces.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedback: feedback,
		logger:   logger,
	}
}

// RegisterRoutes registers feedback routes
func (h *FeedbackHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recordFeedback",
		Method:      http.MethodPost,
		Path:        "/api/feedback",
		Summary:     "Rate or comment on a variant",
		Tags:        []string{"Feedback"},
	}, h.RecordFeedback)
}

// FeedbackInput defines the input for feedback. The body is optional.
type FeedbackInput struct {
	Body *requests.FeedbackRequest `required:"false"`
}

// FeedbackOutput defines the output for feedback
type FeedbackOutput struct {
	Body responses.FeedbackResponse
}

// RecordFeedback handles the POST /api/feedback endpoint
func (h *FeedbackHandler) RecordFeedback(ctx context.Context, input *FeedbackInput) (*FeedbackOutput, error) {
	record, ok := mappers.ToFeedbackRecord(input.Body)
	if !ok {
		h.logger.Warn("Ignoring unrecognised rating", map[string]interface{}{
			"rating": input.Body.Rating,
		})
	}

	if err := h.feedback.Record(ctx, record); err != nil {
		h.logger.Error("Error recording feedback", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &FeedbackOutput{Body: responses.FeedbackResponse{
		Success: true,
		Message: "Feedback recorded",
	}}, nil
}
