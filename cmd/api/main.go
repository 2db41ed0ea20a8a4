// ABOUTME: Main entry point for the Linkpost API
// ABOUTME: Cobra root command with serve (default) and digest subcommands

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linkpost-api/pkg/config"
)

var (
	// Global flags
	configFile string
	port       string
)

// rootCmd runs the server when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "linkpost",
	Short: "Turn a webpage into social posts and publish them to Bluesky",
	Long: `linkpost fetches a webpage, asks a language model for three post
variants (concise, detailed, casual) and publishes the one you pick to Bluesky.

Run without arguments to start the HTTP server and web UI.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and web UI",
	RunE:  runServe,
}

// digestCmd prints the digest of one webpage
var digestCmd = &cobra.Command{
	Use:   "digest [url]",
	Short: "Fetch a webpage and print its digest as JSON",
	Long: `Runs the webpage extractor once and prints the digest.

With --description and --tone the digest is also sent to the language model
and the generated variants are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runDigest,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (overrides CONFIG_FILE)")
	rootCmd.PersistentFlags().StringVar(&port, "port", "", "HTTP port (overrides PORT)")

	digestCmd.Flags().StringVar(&digestDescription, "description", "", "instruction for generating variants")
	digestCmd.Flags().StringVar(&digestTone, "tone", "", "tone for generated variants")

	rootCmd.AddCommand(serveCmd, digestCmd)
}

// loadConfig resolves the config file flag, loads and validates
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if port != "" {
		cfg.Server.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
