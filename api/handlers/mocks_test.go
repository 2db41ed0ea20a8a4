package handlers

import (
	"context"
	"sync"

	"linkpost-api/core/domain"
	"linkpost-api/core/errors"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

// recordingLogger keeps the fields of every warning
type recordingLogger struct {
	nopLogger
	warnings []map[string]interface{}
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warnings = append(l.warnings, fields)
}

// mockExtractor is a mock implementation of the extractor service
type mockExtractor struct {
	extractFunc func(ctx context.Context, url string) (*domain.PageDigest, error)
	calls       int
}

func (m *mockExtractor) Extract(ctx context.Context, url string) (*domain.PageDigest, error) {
	m.calls++
	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return &domain.PageDigest{URL: url}, nil
}

// mockGenerator is a mock implementation of the generator service
type mockGenerator struct {
	generateFunc func(ctx context.Context, digest *domain.PageDigest, instruction string, tone domain.Tone) ([]domain.PostVariant, error)
	calls        int
	lastTone     domain.Tone
}

func (m *mockGenerator) Generate(ctx context.Context, digest *domain.PageDigest, instruction string, tone domain.Tone) ([]domain.PostVariant, error) {
	m.calls++
	m.lastTone = tone
	if m.generateFunc != nil {
		return m.generateFunc(ctx, digest, instruction, tone)
	}
	return threeVariants(), nil
}

func threeVariants() []domain.PostVariant {
	return []domain.PostVariant{
		{Style: domain.StyleConcise, Text: "Acme ships rocket skates."},
		{Style: domain.StyleDetailed, Text: "Acme's rocket skates ship next month with a solid fuel booster."},
		{Style: domain.StyleCasual, Text: "rocket skates. that's it. that's the post."},
	}
}

// mockStore keeps generations in a map
type mockStore struct {
	mu          sync.Mutex
	generations map[string]*domain.Generation
	saveErr     error
}

func newMockStore() *mockStore {
	return &mockStore{generations: map[string]*domain.Generation{}}
}

func (m *mockStore) Save(ctx context.Context, g *domain.Generation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.generations[g.ID] = g
	return nil
}

func (m *mockStore) Get(ctx context.Context, id string) (*domain.Generation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.generations[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "generation", ID: id}
	}
	return g, nil
}

// mockPublisher is a mock implementation of the publisher service
type mockPublisher struct {
	publishFunc func(ctx context.Context, text string) (*domain.PublishResult, error)
	texts       []string
}

func (m *mockPublisher) EnsureAuthenticated(ctx context.Context) bool { return true }

func (m *mockPublisher) Publish(ctx context.Context, text string) (*domain.PublishResult, error) {
	m.texts = append(m.texts, text)
	return m.publishFunc(ctx, text)
}

// mockFeedback records every feedback record
type mockFeedback struct {
	records []domain.FeedbackRecord
	err     error
}

func (m *mockFeedback) Record(ctx context.Context, record domain.FeedbackRecord) error {
	m.records = append(m.records, record)
	return m.err
}
