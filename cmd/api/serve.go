package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"linkpost-api/api"
	"linkpost-api/api/handlers"
	"linkpost-api/web"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireLLMKey(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg, logger, true)
	if err != nil {
		return err
	}

	logger.Info("Starting Linkpost API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"llm":        cfg.LLM.Provider,
		"model":      cfg.LLM.Model,
		"publishing": cfg.PublishingEnabled(),
	})

	// Eager login so credential problems show up in the startup log
	if a.publisher.EnsureAuthenticated(ctx) {
		logger.Info("Bluesky session established", map[string]interface{}{
			"handle": cfg.Bluesky.Handle,
		})
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})

	handlers.NewGenerateHandler(a.extractor, a.generator, a.generations, logger).RegisterRoutes(humaAPI)
	handlers.NewPublishHandler(a.publisher, logger).RegisterRoutes(humaAPI)
	handlers.NewFeedbackHandler(a.feedback, logger).RegisterRoutes(humaAPI)

	staticHandler, err := handlers.NewStaticHandler(web.Assets, logger)
	if err != nil {
		return err
	}
	staticHandler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
		// Generation waits on the page fetch and the model, so the write
		// timeout covers both
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.Fetch.Timeout + 60*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}
