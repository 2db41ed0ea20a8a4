// ABOUTME: Response DTOs for the generate, publish and feedback endpoints
// ABOUTME: Field names follow the JSON contract the web UI consumes

package responses

import "linkpost-api/core/domain"

// WebpageInfo summarises the page the posts were generated from
type WebpageInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GenerateResponse carries the three variants in style order
type GenerateResponse struct {
	GenerationID string               `json:"generationId" doc:"Token for addressing these variants in feedback"`
	Tweets       []domain.PostVariant `json:"tweets" doc:"Variants in the order concise, detailed, casual"`
	WebpageInfo  WebpageInfo          `json:"webpageInfo"`
}

// PublishResponse links to the created post
type PublishResponse struct {
	Success bool   `json:"success"`
	PostURL string `json:"postUrl" doc:"Web address of the new post"`
	URI     string `json:"uri,omitempty" doc:"AT-URI of the post record"`
	CID     string `json:"cid,omitempty" doc:"Content hash of the post record"`
}

// FeedbackResponse acknowledges feedback
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
