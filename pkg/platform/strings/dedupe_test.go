package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "only whitespace", input: "   ", expected: nil},
		{name: "single item", input: "localhost:9092", expected: []string{"localhost:9092"}},
		{name: "trims and skips blanks", input: " a, ,b ,c", expected: []string{"a", "b", "c"}},
		{name: "keeps duplicates", input: "a,a", expected: []string{"a", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}

func TestNormalizePhrases(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil slice", input: nil, expected: nil},
		{name: "empty slice", input: []string{}, expected: []string{}},
		{
			name:     "lowercases and collapses whitespace",
			input:    []string{"  Peer   Review\tShows "},
			expected: []string{"peer review shows"},
		},
		{
			name:     "dedupes after normalization preserving order",
			input:    []string{"Meta-analysis found", "cohort data", "meta-analysis   FOUND"},
			expected: []string{"meta-analysis found", "cohort data"},
		},
		{
			name:     "drops empty entries",
			input:    []string{"", "   ", "trial results"},
			expected: []string{"trial results"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhrases(tt.input))
		})
	}
}
