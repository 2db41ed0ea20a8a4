// ABOUTME: Generate handler that turns a webpage into three post variants
// ABOUTME: Validates the request, extracts the page, generates variants and registers the result

package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"linkpost-api/api/dto/mappers"
	"linkpost-api/api/dto/requests"
	"linkpost-api/api/dto/responses"
	"linkpost-api/core/domain"
	"linkpost-api/core/errors"
	"linkpost-api/core/interfaces"
)

// MissingFieldsMessage is returned when url, description or tone is absent
const MissingFieldsMessage = "Missing required fields"

// GenerateHandler handles post generation
type GenerateHandler struct {
	extractor   interfaces.ExtractorService
	generator   interfaces.GeneratorService
	generations interfaces.GenerationStore
	logger      interfaces.Logger
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(extractor interfaces.ExtractorService, generator interfaces.GeneratorService, generations interfaces.GenerationStore, logger interfaces.Logger) *GenerateHandler {
	return &GenerateHandler{
		extractor:   extractor,
		generator:   generator,
		generations: generations,
		logger:      logger,
	}
}

// RegisterRoutes registers generate routes
func (h *GenerateHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generateTweets",
		Method:      http.MethodPost,
		Path:        "/api/generate-tweets",
		Summary:     "Generate post variants from a webpage",
		Description: "Fetches the page, builds a digest and asks the language model for concise, detailed and casual variants",
		Tags:        []string{"Posts"},
	}, h.GenerateTweets)
}

// GenerateInput defines the input for generation
type GenerateInput struct {
	Body requests.GenerateRequest
}

// GenerateOutput defines the output for generation
type GenerateOutput struct {
	Body responses.GenerateResponse
}

// GenerateTweets handles the POST /api/generate-tweets endpoint
func (h *GenerateHandler) GenerateTweets(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	req := input.Body
	url := strings.TrimSpace(req.URL)
	description := strings.TrimSpace(req.Description)
	if url == "" || description == "" || strings.TrimSpace(req.Tone) == "" {
		return nil, toHumaError(&errors.ValidationError{Field: "body", Message: MissingFieldsMessage})
	}

	tone, ok := domain.ParseTone(req.Tone)
	if !ok {
		return nil, toHumaError(&errors.ValidationError{Field: "tone", Message: "Invalid tone: " + req.Tone})
	}

	digest, err := h.extractor.Extract(ctx, url)
	if err != nil {
		h.logFailure(url, err)
		return nil, toHumaError(err)
	}

	variants, err := h.generator.Generate(ctx, digest, description, tone)
	if err != nil {
		h.logFailure(url, err)
		return nil, toHumaError(err)
	}

	generation := &domain.Generation{
		ID:        uuid.New().String(),
		URL:       url,
		Tone:      tone,
		CreatedAt: time.Now().UTC(),
	}
	copy(generation.Variants[:], variants)

	if h.generations != nil {
		if err := h.generations.Save(ctx, generation); err != nil {
			h.logger.Warn("Failed to register generation", map[string]interface{}{
				"generation_id": generation.ID,
				"error":         err.Error(),
			})
		}
	}

	return &GenerateOutput{Body: mappers.ToGenerateResponse(generation, digest)}, nil
}

func (h *GenerateHandler) logFailure(url string, err error) {
	h.logger.Error("Error generating tweets", map[string]interface{}{
		"url":   url,
		"error": err.Error(),
	})
}
