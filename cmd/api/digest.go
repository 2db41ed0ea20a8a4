package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"linkpost-api/core/domain"
)

var (
	digestDescription string
	digestTone        string
)

// digestOutput is what the digest command prints
type digestOutput struct {
	Digest   *domain.PageDigest   `json:"digest"`
	Variants []domain.PostVariant `json:"variants,omitempty"`
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var tone domain.Tone
	generate := digestDescription != "" || digestTone != ""
	if generate {
		parsed, ok := domain.ParseTone(digestTone)
		if !ok || strings.TrimSpace(digestDescription) == "" {
			return fmt.Errorf("--description and a valid --tone are both required to generate variants")
		}
		tone = parsed
		if err := cfg.RequireLLMKey(); err != nil {
			return err
		}
	}

	// Logs go to stderr so stdout stays valid JSON
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := buildApp(ctx, cfg, logger, generate)
	if err != nil {
		return err
	}

	digest, err := a.extractor.Extract(ctx, args[0])
	if err != nil {
		return err
	}

	out := digestOutput{Digest: digest}
	if generate {
		out.Variants, err = a.generator.Generate(ctx, digest, digestDescription, tone)
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
