// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: Expiring in-memory cache backed by go-cache
// - http/standard: Webpage fetching with a browser User-Agent, no retries
// - llm/openai: Chat completions through openai-go
// - llm/gemini: Content generation through the genai SDK
// - bluesky: Session login and post records over AT Protocol XRPC (indigo)
// - logger/logrus: Structured logging with optional rotating files
//
// # Example
//
//	llm, err := openai.NewClient(openai.Settings{APIKey: key})
//	if err != nil {
//	    return err
//	}
//	text, err := llm.Complete(ctx, interfaces.Prompt{System: system, User: user})
package infrastructure
