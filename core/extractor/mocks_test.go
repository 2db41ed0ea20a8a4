package extractor

import (
	"context"
	"io"
	"strings"

	"linkpost-api/core/interfaces"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

// mockHTTPClient serves canned responses without a network
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls = append(m.calls, url)
	return m.getFunc(ctx, url)
}

type mockResponse struct {
	status  int
	body    string
	headers map[string]string
}

func (r *mockResponse) StatusCode() int { return r.status }

func (r *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(r.body)) }

func (r *mockResponse) Header(key string) string { return r.headers[key] }

func htmlResponse(body string) *mockResponse {
	return &mockResponse{
		status:  200,
		body:    body,
		headers: map[string]string{"Content-Type": "text/html; charset=utf-8"},
	}
}

func newTestService(client interfaces.HTTPClient) *Service {
	return NewService(interfaces.Dependencies{
		HTTPClient: client,
		Logger:     nopLogger{},
	})
}
