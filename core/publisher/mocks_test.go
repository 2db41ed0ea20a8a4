package publisher

import (
	"context"
	"fmt"
	"sync"

	"linkpost-api/core/interfaces"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

// mockSocial fakes an account that accepts one password
type mockSocial struct {
	mu       sync.Mutex
	password string
	loginErr error
	postErr  error
	loggedIn bool
	logins   int
	posts    []string
}

func (m *mockSocial) Login(ctx context.Context, handle, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins++
	if m.loginErr != nil {
		return m.loginErr
	}
	if password != m.password {
		return fmt.Errorf("AuthenticationRequired: Invalid identifier or password")
	}
	m.loggedIn = true
	return nil
}

func (m *mockSocial) CreatePost(ctx context.Context, text string) (*interfaces.CreatedPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loggedIn {
		return nil, fmt.Errorf("not logged in")
	}
	if m.postErr != nil {
		return nil, m.postErr
	}
	m.posts = append(m.posts, text)
	n := len(m.posts)
	return &interfaces.CreatedPost{
		URI: fmt.Sprintf("at://did:plc:abc123/app.bsky.feed.post/3kpost%d", n),
		CID: fmt.Sprintf("bafycid%d", n),
	}, nil
}

func (m *mockSocial) loginCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logins
}
