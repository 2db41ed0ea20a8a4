package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"linkpost-api/core/domain"
)

// ParseVariants reads the model's raw answer as a JSON array of three
// {style, text} objects. One surrounding markdown code fence is tolerated.
// Anything else is rejected.
func ParseVariants(raw string) ([]domain.PostVariant, error) {
	body := stripCodeFence(strings.TrimSpace(raw))
	if body == "" {
		return nil, fmt.Errorf("empty model output")
	}

	var variants []domain.PostVariant
	if err := json.Unmarshal([]byte(body), &variants); err != nil {
		return nil, fmt.Errorf("model output is not a JSON array of variants: %w", err)
	}

	for i := range variants {
		variants[i].Style = domain.Style(strings.ToLower(strings.TrimSpace(string(variants[i].Style))))
		variants[i].Text = strings.TrimSpace(variants[i].Text)
	}

	if err := domain.ValidateVariants(variants); err != nil {
		return nil, err
	}
	return variants, nil
}

// stripCodeFence removes a single ```/```json fence wrapping s
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	inner := strings.TrimSuffix(s, "```")
	newline := strings.IndexByte(inner, '\n')
	if newline < 0 {
		return s
	}
	// Anything after the opening fence on its line is a language tag
	return strings.TrimSpace(inner[newline+1:])
}
