// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides short-lived storage for generation results
	Cache Cache

	// HTTPClient fetches webpages
	HTTPClient HTTPClient

	// LLM generates post text
	LLM LLMClient

	// Social publishes posts to the social network
	Social SocialClient

	// Logger provides structured logging
	Logger Logger
}
