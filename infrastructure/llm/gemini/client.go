// ABOUTME: LLMClient implementation over the Google GenAI SDK
// ABOUTME: Requests JSON output from a Gemini model for each prompt

package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"linkpost-api/core/interfaces"
)

// DefaultModel is used when Settings.Model is empty
const DefaultModel = "gemini-2.0-flash"

// Settings configures the client
type Settings struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Client implements interfaces.LLMClient using GenerateContent
type Client struct {
	client *genai.Client
	model  string
}

var _ interfaces.LLMClient = (*Client)(nil)

// NewClient creates a Gemini API client. An API key is required.
func NewClient(ctx context.Context, settings Settings) (*Client, error) {
	if settings.APIKey == "" {
		return nil, errors.New("gemini api key missing; set GEMINI_API_KEY")
	}
	model := settings.Model
	if model == "" {
		model = DefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if settings.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: settings.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Name identifies the provider and model
func (c *Client) Name() string {
	return "gemini/" + c.model
}

// Complete sends the prompt with the system text as system instruction
func (c *Client) Complete(ctx context.Context, prompt interfaces.Prompt) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if prompt.System != "" {
		config.SystemInstruction = genai.NewContentFromText(prompt.System, genai.RoleUser)
	}
	if prompt.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(prompt.Temperature))
	}
	if prompt.MaxTokens > 0 {
		config.MaxOutputTokens = int32(prompt.MaxTokens)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt.User), config)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}
