// ABOUTME: Request DTOs for the generate, publish and feedback endpoints
// ABOUTME: Fields are optional in the schema so missing values are reported as 400 by the handlers

package requests

// GenerateRequest asks for three post variants about a webpage
type GenerateRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	// URL of the webpage to summarise
	URL string `json:"url,omitempty" example:"https://example.com/launch" doc:"Webpage to build the posts from"`

	// Description is the free-text instruction for the model
	Description string `json:"description,omitempty" example:"summarize the launch" doc:"What the posts should do with the page"`

	// Tone is one of the accepted tone labels
	Tone string `json:"tone,omitempty" example:"casual" doc:"One of professional, casual, humorous, informative, inspirational, provocative"`
}

// PublishRequest publishes finished text as a new post
type PublishRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Text string `json:"text,omitempty" example:"Acme just shipped rocket skates" doc:"Post text"`
}

// FeedbackRequest rates or comments on one variant. Every field accepts any
// JSON value; values of the wrong type are dropped by the mapper instead of
// failing the request.
type FeedbackRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	// GenerationID ties TweetID to a specific generate response
	GenerationID any `json:"generationId,omitempty" doc:"Generation the variant belongs to (string)"`

	// TweetID is the variant's zero-based position in that response
	TweetID any `json:"tweetId,omitempty" doc:"Zero-based index of the variant (integer)"`

	Feedback any `json:"feedback,omitempty" doc:"Free-text comment (string)"`

	Rating any `json:"rating,omitempty" doc:"up, down, or null"`
}
