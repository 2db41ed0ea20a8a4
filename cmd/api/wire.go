package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"linkpost-api/api/middleware"
	"linkpost-api/core/extractor"
	"linkpost-api/core/feedback"
	"linkpost-api/core/generations"
	"linkpost-api/core/generator"
	"linkpost-api/core/interfaces"
	"linkpost-api/core/publisher"
	"linkpost-api/infrastructure/bluesky"
	"linkpost-api/infrastructure/cache/memory"
	stdhttp "linkpost-api/infrastructure/http/standard"
	"linkpost-api/infrastructure/llm/gemini"
	"linkpost-api/infrastructure/llm/openai"
	logruslogger "linkpost-api/infrastructure/logger/logrus"
	"linkpost-api/pkg/config"
)

// app holds the wired services
type app struct {
	logger      *logruslogger.LogrusLogger
	extractor   *extractor.Service
	generator   *generator.Service
	generations *generations.Store
	publisher   *publisher.Service
	feedback    *feedback.Service
}

// newLogger creates the process logger. logOutput is used when no log file
// is configured.
func newLogger(cfg *config.Config, logOutput io.Writer) (*logruslogger.LogrusLogger, error) {
	return logruslogger.NewLogrusLogger(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Output: logOutput,
	})
}

// newLLM creates the text-generation client for the configured provider
func newLLM(ctx context.Context, cfg *config.Config) (interfaces.LLMClient, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		return gemini.NewClient(ctx, gemini.Settings{
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
			BaseURL: cfg.LLM.BaseURL,
		})
	case config.ProviderOpenAI:
		return openai.NewClient(openai.Settings{
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
			BaseURL: cfg.LLM.BaseURL,
		})
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

// buildApp wires configuration, infrastructure and core services. The LLM
// client is only created when withLLM is set.
func buildApp(ctx context.Context, cfg *config.Config, logger *logruslogger.LogrusLogger, withLLM bool) (*app, error) {
	transport := &middleware.LoggingRoundTripper{Logger: logger}

	cache := memory.NewMemoryCache(cfg.Generations.TTL, 2*cfg.Generations.TTL)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: stdhttp.NewStandardHTTPClientWithTransport(cfg.Fetch.Timeout, transport),
		Social: bluesky.NewClientWithHTTPClient(cfg.Bluesky.Service, &http.Client{
			Timeout:   cfg.Fetch.Timeout,
			Transport: transport,
		}),
		Logger: logger,
	}

	if withLLM {
		llm, err := newLLM(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create llm client: %w", err)
		}
		deps.LLM = llm
	}

	store := generations.NewStore(deps, cfg.Generations.TTL)

	return &app{
		logger:    logger,
		extractor: extractor.NewService(deps),
		generator: generator.NewService(deps,
			generator.WithTemperature(cfg.LLM.Temperature),
			generator.WithMaxTokens(cfg.LLM.MaxTokens),
		),
		generations: store,
		publisher: publisher.NewService(deps, publisher.Credentials{
			Handle:      cfg.Bluesky.Handle,
			AppPassword: cfg.Bluesky.AppPassword,
		}),
		feedback: feedback.NewService(deps, store),
	}, nil
}
