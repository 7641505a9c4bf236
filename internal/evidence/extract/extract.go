// Package extract finds sentences in free text that read like evidence.
package extract

import (
	"strings"

	platformstrings "research/pkg/platform/strings"
)

// sentenceSeparator is deliberately naive: abbreviations like "e.g. " split too.
const sentenceSeparator = ". "

// DefaultMarkers are the phrases that flag a sentence as potential evidence.
var DefaultMarkers = []string{
	"according to",
	"research shows",
	"studies indicate",
	"data reveals",
	"evidence suggests",
	"findings show",
	"analysis demonstrates",
	"statistics show",
	"survey results",
	"experiment showed",
}

// Extractor matches sentences against a fixed marker set.
type Extractor struct {
	markers []string
}

// New returns an Extractor using DefaultMarkers plus any extra phrases.
// Extra phrases are normalized and duplicates of existing markers are ignored.
func New(extra ...string) *Extractor {
	combined := make([]string, 0, len(DefaultMarkers)+len(extra))
	combined = append(combined, DefaultMarkers...)
	combined = append(combined, extra...)
	return &Extractor{markers: platformstrings.NormalizePhrases(combined)}
}

// Markers returns a copy of the configured marker phrases.
func (x *Extractor) Markers() []string {
	return append([]string(nil), x.markers...)
}

// Extract returns every trimmed sentence containing at least one marker,
// in input order. Repeated sentences are each returned.
func (x *Extractor) Extract(text string) []string {
	found := []string{}
	for _, sentence := range strings.Split(text, sentenceSeparator) {
		lower := strings.ToLower(sentence)
		for _, marker := range x.markers {
			if strings.Contains(lower, marker) {
				found = append(found, strings.TrimSpace(sentence))
				break
			}
		}
	}
	return found
}

var defaultExtractor = New()

// ExtractPotentialEvidence runs the default marker set over text.
func ExtractPotentialEvidence(text string) []string {
	return defaultExtractor.Extract(text)
}
