package domain

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{
			name:  "shorter than limit is unchanged",
			input: "hello",
			limit: 10,
			want:  "hello",
		},
		{
			name:  "exact length is unchanged",
			input: "hello",
			limit: 5,
			want:  "hello",
		},
		{
			name:  "cuts mid-word",
			input: "hello world",
			limit: 7,
			want:  "hello w",
		},
		{
			name:  "counts characters not bytes",
			input: "héllo wörld",
			limit: 8,
			want:  "héllo wö",
		},
		{
			name:  "zero limit yields empty string",
			input: "hello",
			limit: 0,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.input, tt.limit); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes_LargeInput(t *testing.T) {
	input := strings.Repeat("ü", MaxDigestContentLength*2)

	got := TruncateRunes(input, MaxDigestContentLength)

	if n := utf8.RuneCountInString(got); n != MaxDigestContentLength {
		t.Errorf("rune count = %d, want %d", n, MaxDigestContentLength)
	}
	if !utf8.ValidString(got) {
		t.Error("truncated string is not valid UTF-8")
	}
}

func TestPageDigest_HeadingsText(t *testing.T) {
	d := &PageDigest{Headings: []string{"One", "Two", "Three"}}

	if got := d.HeadingsText(); got != "One\nTwo\nThree" {
		t.Errorf("HeadingsText() = %q", got)
	}

	empty := &PageDigest{}
	if got := empty.HeadingsText(); got != "" {
		t.Errorf("HeadingsText() on empty digest = %q, want empty", got)
	}
}
