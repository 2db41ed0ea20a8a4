// ABOUTME: Domain models for generated post variants and generation results
// ABOUTME: A generation always holds exactly three variants in a fixed style order

package domain

import (
	"errors"
	"fmt"
	"time"
)

// Style labels one of the three stylistic variants
type Style string

const (
	StyleConcise  Style = "concise"
	StyleDetailed Style = "detailed"
	StyleCasual   Style = "casual"
)

// VariantStyles is the fixed order of variants in every generation
var VariantStyles = [3]Style{StyleConcise, StyleDetailed, StyleCasual}

// MaxPostLength is the intended upper bound of a post's length. It is asked of
// the model but not enforced.
const MaxPostLength = 280

// PostVariant is one generated candidate post
type PostVariant struct {
	Style Style  `json:"style"`
	Text  string `json:"text"`
}

// Generation is the result of one generate call. Variants are addressed by
// their position, which is only meaningful together with the generation ID.
type Generation struct {
	ID        string         `json:"id"`
	URL       string         `json:"url"`
	Tone      Tone           `json:"tone"`
	Variants  [3]PostVariant `json:"variants"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Variant returns the variant at index, or false when index is out of range
func (g *Generation) Variant(index int) (PostVariant, bool) {
	if index < 0 || index >= len(g.Variants) {
		return PostVariant{}, false
	}
	return g.Variants[index], true
}

// ValidateVariants checks that variants hold exactly three entries in the
// fixed style order, each with text
func ValidateVariants(variants []PostVariant) error {
	if len(variants) != len(VariantStyles) {
		return fmt.Errorf("expected %d variants, got %d", len(VariantStyles), len(variants))
	}
	for i, v := range variants {
		if v.Style != VariantStyles[i] {
			return fmt.Errorf("variant %d has style %q, want %q", i, v.Style, VariantStyles[i])
		}
		if v.Text == "" {
			return errors.New("variant " + string(v.Style) + " has no text")
		}
	}
	return nil
}
