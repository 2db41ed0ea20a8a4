package interfaces

import "context"

// CreatedPost identifies a record created by a SocialClient
type CreatedPost struct {
	URI string
	CID string
}

// SocialClient abstracts a social network account
type SocialClient interface {
	// Login authenticates with a handle and application password.
	// A successful login is kept by the client for later posts.
	Login(ctx context.Context, handle, password string) error

	// CreatePost publishes text as a new public post on the logged-in account
	CreatePost(ctx context.Context, text string) (*CreatedPost, error)
}
