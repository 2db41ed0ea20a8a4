// ABOUTME: Webpage extractor service that derives a bounded digest from a URL
// ABOUTME: Fetches the page with a browser-like client and parses it with goquery

package extractor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"linkpost-api/core/domain"
	"linkpost-api/core/errors"
	"linkpost-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// maxBodySize bounds how much of a page is read
const maxBodySize = 5 * 1024 * 1024

// Service extracts digests from webpages
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new extractor service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps: deps,
	}
}

// Extract fetches url and returns its digest. Any retrieval or parse failure
// is returned as a FetchError.
func (s *Service) Extract(ctx context.Context, url string) (*domain.PageDigest, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, &errors.FetchError{URL: url, Err: err}
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &errors.FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	reader, err := charset.NewReader(io.LimitReader(body, maxBodySize), resp.Header("Content-Type"))
	if err != nil {
		return nil, &errors.FetchError{URL: url, Err: fmt.Errorf("decode body: %w", err)}
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, &errors.FetchError{URL: url, Err: fmt.Errorf("parse markup: %w", err)}
	}

	digest := DigestDocument(doc)
	digest.URL = url

	s.deps.Logger.Debug("Webpage extracted", map[string]interface{}{
		"url":            url,
		"title":          digest.Title,
		"headings":       len(digest.Headings),
		"content_length": utf8.RuneCountInString(digest.Content),
	})

	return digest, nil
}

// DigestDocument builds a digest from a parsed document. Script and style
// elements are removed from doc first.
func DigestDocument(doc *goquery.Document) *domain.PageDigest {
	doc.Find("script, style").Remove()

	digest := &domain.PageDigest{
		Title:           doc.Find("title").First().Text(),
		MetaDescription: doc.Find(`meta[name="description"]`).First().AttrOr("content", ""),
		Headings:        []string{},
	}

	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		digest.Headings = append(digest.Headings, strings.TrimSpace(sel.Text()))
		return len(digest.Headings) < domain.MaxDigestHeadings
	})

	var paragraphs []string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) > domain.MinParagraphLength {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < domain.MaxDigestParagraphs
	})

	digest.Content = domain.TruncateRunes(strings.Join(paragraphs, "\n\n"), domain.MaxDigestContentLength)
	return digest
}
