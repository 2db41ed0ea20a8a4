// Package core contains the business logic for the Linkpost API.
// It does not depend on the HTTP framework or on any concrete provider.
//
// The core package is organized into several sub-packages:
//
// - domain: Page digests, tones, post variants, generations and feedback records
// - extractor: Fetches a webpage and reduces it to a bounded digest
// - generator: Builds the prompt and parses the model's three variants
// - generations: Short-lived registry resolving generation IDs for feedback
// - publisher: Bluesky session handling and post creation
// - feedback: Logs ratings and comments against resolved variants
// - errors: Typed errors the API layer maps to status codes
// - interfaces: Contracts for external dependencies (cache, HTTP, LLM, social, logger)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: httpClient, // implements interfaces.HTTPClient
//	    LLM:        llm,        // implements interfaces.LLMClient
//	    Logger:     logger,     // implements interfaces.Logger
//	}
//
//	digest, err := extractor.NewService(deps).Extract(ctx, "https://example.com/launch")
//	if err != nil {
//	    return err
//	}
//
//	variants, err := generator.NewService(deps).Generate(ctx, digest, "summarize the launch", domain.ToneCasual)
package core
