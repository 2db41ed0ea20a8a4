// ABOUTME: Publisher service that owns the social network session state
// ABOUTME: Logs in lazily with configured credentials and creates public posts

package publisher

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"linkpost-api/core/domain"
	"linkpost-api/core/errors"
	"linkpost-api/core/interfaces"
)

const (
	// AuthFailureMessage is reported when login fails or credentials are missing
	AuthFailureMessage = "Bluesky authentication failed. Please check credentials."

	// PublishFailureMessage is reported for every other publish failure
	PublishFailureMessage = "Failed to post tweet to Bluesky"

	// DefaultProfileBaseURL is the web app that renders posts
	DefaultProfileBaseURL = "https://bsky.app/profile"
)

// Credentials identify the account posts are published to
type Credentials struct {
	Handle      string
	AppPassword string
}

// Configured reports whether both handle and password are set
func (c Credentials) Configured() bool {
	return c.Handle != "" && c.AppPassword != ""
}

// Service publishes posts. Once a login succeeds the session is reused for
// the lifetime of the process. A failed login is retried on the next publish.
type Service struct {
	deps        interfaces.Dependencies
	credentials Credentials
	profileBase string

	mu            sync.Mutex
	authenticated bool
}

// NewService creates a new publisher service
func NewService(deps interfaces.Dependencies, credentials Credentials) *Service {
	return &Service{
		deps:        deps,
		credentials: credentials,
		profileBase: DefaultProfileBaseURL,
	}
}

// Authenticated reports the cached session state
func (s *Service) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// EnsureAuthenticated logs in unless a session already exists. It returns
// false when credentials are missing or the login is rejected.
func (s *Service) EnsureAuthenticated(ctx context.Context) bool {
	if s.Authenticated() {
		return true
	}

	if !s.credentials.Configured() {
		s.deps.Logger.Warn("Bluesky credentials not configured", nil)
		return false
	}

	// Concurrent callers may both log in; the remote side tolerates it
	if err := s.deps.Social.Login(ctx, s.credentials.Handle, s.credentials.AppPassword); err != nil {
		s.deps.Logger.Error("Failed to authenticate with Bluesky", map[string]interface{}{
			"handle": s.credentials.Handle,
			"error":  err.Error(),
		})
		return false
	}

	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()

	s.deps.Logger.Info("Successfully authenticated with Bluesky", map[string]interface{}{
		"handle": s.credentials.Handle,
	})
	return true
}

// Publish creates a new public post. Calling it twice creates two posts.
func (s *Service) Publish(ctx context.Context, text string) (*domain.PublishResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &errors.ValidationError{Field: "text", Message: "Tweet text is required"}
	}

	if !s.EnsureAuthenticated(ctx) {
		return nil, &errors.AuthError{Message: AuthFailureMessage}
	}

	post, err := s.deps.Social.CreatePost(ctx, text)
	if err != nil {
		s.deps.Logger.Error("Error posting to Bluesky", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, &errors.PublishError{Message: PublishFailureMessage, Err: err}
	}

	result := &domain.PublishResult{
		PostURL: s.PostURL(post.URI),
		URI:     post.URI,
		CID:     post.CID,
	}

	s.deps.Logger.Info("Post published", map[string]interface{}{
		"uri":      post.URI,
		"post_url": result.PostURL,
	})
	return result, nil
}

// PostURL maps an AT-URI to its web address on the configured handle's
// profile. The record key is the URI's last path segment.
func (s *Service) PostURL(uri string) string {
	rkey := uri[strings.LastIndex(uri, "/")+1:]
	return fmt.Sprintf("%s/%s/post/%s", s.profileBase, s.credentials.Handle, rkey)
}
