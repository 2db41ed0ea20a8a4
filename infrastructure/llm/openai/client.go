// ABOUTME: LLMClient implementation over the official openai-go SDK
// ABOUTME: Sends one chat completion per prompt with retries disabled

package openai

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"linkpost-api/core/interfaces"
)

// DefaultModel is used when Settings.Model is empty
const DefaultModel = "gpt-4o-mini"

// Settings configures the client
type Settings struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Client implements interfaces.LLMClient using chat completions
type Client struct {
	client openai.Client
	model  string
}

var _ interfaces.LLMClient = (*Client)(nil)

// NewClient creates a client. An API key is required.
func NewClient(settings Settings) (*Client, error) {
	if settings.APIKey == "" {
		return nil, errors.New("openai api key missing; set OPENAI_API_KEY")
	}
	model := settings.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(settings.APIKey),
		option.WithMaxRetries(0),
	}
	if settings.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(settings.BaseURL))
	}

	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Name identifies the provider and model
func (c *Client) Name() string {
	return "openai/" + c.model
}

// Complete sends the system and user prompt and returns the first choice
func (c *Client) Complete(ctx context.Context, prompt interfaces.Prompt) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
	}
	if prompt.Temperature > 0 {
		params.Temperature = openai.Float(prompt.Temperature)
	}
	if prompt.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(prompt.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
