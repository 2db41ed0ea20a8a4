// ABOUTME: Publish handler that posts chosen text to Bluesky
// ABOUTME: Distinguishes authentication failures from other publish failures

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"linkpost-api/api/dto/mappers"
	"linkpost-api/api/dto/requests"
	"linkpost-api/api/dto/responses"
	"linkpost-api/core/errors"
	"linkpost-api/core/interfaces"
)

// PublishHandler handles publishing
type PublishHandler struct {
	publisher interfaces.PublisherService
	logger    interfaces.Logger
}

// NewPublishHandler creates a new publish handler
func NewPublishHandler(publisher interfaces.PublisherService, logger interfaces.Logger) *PublishHandler {
	return &PublishHandler{
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterRoutes registers publish routes
func (h *PublishHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "postTweet",
		Method:      http.MethodPost,
		Path:        "/api/post-tweet",
		Summary:     "Publish a post to Bluesky",
		Description: "Creates a new public post. Not idempotent: every call creates a post.",
		Tags:        []string{"Posts"},
	}, h.PostTweet)
}

// PublishInput defines the input for publishing
type PublishInput struct {
	Body requests.PublishRequest
}

// PublishOutput defines the output for publishing
type PublishOutput struct {
	Body responses.PublishResponse
}

// PostTweet handles the POST /api/post-tweet endpoint
func (h *PublishHandler) PostTweet(ctx context.Context, input *PublishInput) (*PublishOutput, error) {
	if input.Body.Text == "" {
		return nil, toHumaError(&errors.ValidationError{Field: "text", Message: "Tweet text is required"})
	}

	result, err := h.publisher.Publish(ctx, input.Body.Text)
	if err != nil {
		h.logger.Error("Error posting to Bluesky", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, toHumaError(err)
	}

	return &PublishOutput{Body: mappers.ToPublishResponse(result)}, nil
}
