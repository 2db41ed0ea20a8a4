package generator

import (
	"context"

	"linkpost-api/core/interfaces"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

// mockLLM records prompts and answers with completeFunc
type mockLLM struct {
	completeFunc func(ctx context.Context, prompt interfaces.Prompt) (string, error)
	prompts      []interfaces.Prompt
}

func (m *mockLLM) Complete(ctx context.Context, prompt interfaces.Prompt) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.completeFunc(ctx, prompt)
}

func (m *mockLLM) Name() string { return "mock" }

func answering(raw string) *mockLLM {
	return &mockLLM{
		completeFunc: func(ctx context.Context, prompt interfaces.Prompt) (string, error) {
			return raw, nil
		},
	}
}
