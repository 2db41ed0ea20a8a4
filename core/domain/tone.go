package domain

import "strings"

// Tone is the overall voice requested for the generated posts
type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneHumorous      Tone = "humorous"
	ToneInformative   Tone = "informative"
	ToneInspirational Tone = "inspirational"
	ToneProvocative   Tone = "provocative"
)

// Tones lists every accepted tone in the order the UI offers them
var Tones = []Tone{
	ToneProfessional,
	ToneCasual,
	ToneHumorous,
	ToneInformative,
	ToneInspirational,
	ToneProvocative,
}

// ParseTone returns the tone matching s, ignoring case and surrounding space
func ParseTone(s string) (Tone, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tones {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}
