// Package api provides the HTTP API layer for Linkpost.
// It uses Huma on a chi router for OpenAPI documentation and request decoding.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS and request logging
// - handlers/: generate, publish, feedback and the embedded web UI
// - dto/: Request and response bodies plus mappers from domain types
// - middleware/: Request IDs, request logging and outbound call logging
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})
//
//	handlers.NewGenerateHandler(extractor, generator, generations, logger).RegisterRoutes(humaAPI)
//	handlers.NewPublishHandler(publisher, logger).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":5000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. The detail field carries the short
// message shown to users:
//
//	{
//	    "status": 401,
//	    "title": "Unauthorized",
//	    "detail": "Bluesky authentication failed. Please check credentials."
//	}
package api
