// ABOUTME: SocialClient implementation for Bluesky over the AT Protocol XRPC API
// ABOUTME: Holds the session tokens from createSession and creates app.bsky.feed.post records

package bluesky

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	comatproto "github.com/bluesky-social/indigo/api/atproto"
	appbsky "github.com/bluesky-social/indigo/api/bsky"
	lexutil "github.com/bluesky-social/indigo/lex/util"
	"github.com/bluesky-social/indigo/xrpc"

	"linkpost-api/core/interfaces"
)

const (
	// DefaultService is the PDS entryway used when none is configured
	DefaultService = "https://bsky.social"

	postCollection = "app.bsky.feed.post"
)

// ErrNotLoggedIn is returned by CreatePost before a successful Login
var ErrNotLoggedIn = errors.New("bluesky: not logged in")

// Client implements interfaces.SocialClient
type Client struct {
	host       string
	httpClient *http.Client

	mu      sync.RWMutex
	session *xrpc.AuthInfo
}

var _ interfaces.SocialClient = (*Client)(nil)

// NewClient creates a client for the PDS at host
func NewClient(host string, timeout time.Duration) *Client {
	return NewClientWithHTTPClient(host, &http.Client{Timeout: timeout})
}

// NewClientWithHTTPClient creates a client that uses httpClient for XRPC calls
func NewClientWithHTTPClient(host string, httpClient *http.Client) *Client {
	if host == "" {
		host = DefaultService
	}
	return &Client{
		host:       strings.TrimSuffix(host, "/"),
		httpClient: httpClient,
	}
}

// xrpcClient returns a client carrying auth, which may be nil
func (c *Client) xrpcClient(auth *xrpc.AuthInfo) *xrpc.Client {
	return &xrpc.Client{
		Client: c.httpClient,
		Host:   c.host,
		Auth:   auth,
	}
}

func (c *Client) currentSession() *xrpc.AuthInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	session := *c.session
	return &session
}

func (c *Client) setSession(session *xrpc.AuthInfo) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
}

// Login creates a session with com.atproto.server.createSession
func (c *Client) Login(ctx context.Context, handle, password string) error {
	out, err := comatproto.ServerCreateSession(ctx, c.xrpcClient(nil), &comatproto.ServerCreateSession_Input{
		Identifier: handle,
		Password:   password,
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	c.setSession(&xrpc.AuthInfo{
		AccessJwt:  out.AccessJwt,
		RefreshJwt: out.RefreshJwt,
		Handle:     out.Handle,
		Did:        out.Did,
	})
	return nil
}

// CreatePost creates a post record in the session's repo. An expired access
// token is refreshed once and the record is submitted again.
func (c *Client) CreatePost(ctx context.Context, text string) (*interfaces.CreatedPost, error) {
	session := c.currentSession()
	if session == nil {
		return nil, ErrNotLoggedIn
	}

	post, err := c.createRecord(ctx, session, text)
	if err == nil || !isExpiredToken(err) {
		return post, err
	}

	session, refreshErr := c.refresh(ctx, session)
	if refreshErr != nil {
		return nil, fmt.Errorf("%w (refresh failed: %v)", err, refreshErr)
	}
	return c.createRecord(ctx, session, text)
}

func (c *Client) createRecord(ctx context.Context, session *xrpc.AuthInfo, text string) (*interfaces.CreatedPost, error) {
	out, err := comatproto.RepoCreateRecord(ctx, c.xrpcClient(session), &comatproto.RepoCreateRecord_Input{
		Collection: postCollection,
		Repo:       session.Did,
		Record: &lexutil.LexiconTypeDecoder{Val: &appbsky.FeedPost{
			Text:      text,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	return &interfaces.CreatedPost{URI: out.Uri, CID: out.Cid}, nil
}

// refresh exchanges the refresh token for a new session
func (c *Client) refresh(ctx context.Context, session *xrpc.AuthInfo) (*xrpc.AuthInfo, error) {
	// refreshSession authenticates with the refresh token as bearer
	bearer := &xrpc.AuthInfo{AccessJwt: session.RefreshJwt, Did: session.Did, Handle: session.Handle}

	out, err := comatproto.ServerRefreshSession(ctx, c.xrpcClient(bearer))
	if err != nil {
		return nil, err
	}

	refreshed := &xrpc.AuthInfo{
		AccessJwt:  out.AccessJwt,
		RefreshJwt: out.RefreshJwt,
		Handle:     out.Handle,
		Did:        out.Did,
	}
	c.setSession(refreshed)
	return refreshed, nil
}

func isExpiredToken(err error) bool {
	var xerr *xrpc.Error
	if !errors.As(err, &xerr) {
		return false
	}
	return strings.Contains(err.Error(), "ExpiredToken")
}
