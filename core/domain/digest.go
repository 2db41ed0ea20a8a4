// ABOUTME: Domain model for the bounded text digest extracted from a webpage
// ABOUTME: Defines the limits that every digest must respect

package domain

import "strings"

const (
	// MaxDigestHeadings is the number of h1-h3 headings kept from a page
	MaxDigestHeadings = 10

	// MaxDigestParagraphs is the number of qualifying paragraphs kept from a page
	MaxDigestParagraphs = 20

	// MinParagraphLength is the exclusive lower bound on a qualifying paragraph's length
	MinParagraphLength = 50

	// MaxDigestContentLength is the character budget of the joined paragraph text
	MaxDigestContentLength = 3000
)

// PageDigest is the bounded textual summary of a fetched webpage.
// It is derived per request and never stored.
type PageDigest struct {
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	Headings        []string `json:"headings"`
	Content         string   `json:"content"`
}

// HeadingsText joins the headings with newlines
func (d *PageDigest) HeadingsText() string {
	return strings.Join(d.Headings, "\n")
}

// TruncateRunes cuts s to at most limit characters. It does not respect word
// boundaries.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
