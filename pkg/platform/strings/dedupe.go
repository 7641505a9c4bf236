// Package strings provides string-list helpers shared by config parsing and
// text heuristics.
package strings

import (
	"strings"
)

// SplitList splits a comma-separated value into trimmed, non-empty items.
// Duplicates are kept; order is preserved.
//
//	SplitList(" redis:6379, ,kafka:9092 ")
//	// []string{"redis:6379", "kafka:9092"}
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// NormalizePhrases lowercases each phrase, collapses inner whitespace to a
// single space and drops empties and duplicates. Order is preserved.
//
//	NormalizePhrases([]string{"  Research   Shows", "research shows", ""})
//	// []string{"research shows"}
func NormalizePhrases(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		phrase := strings.ToLower(strings.Join(strings.Fields(v), " "))
		if phrase == "" {
			continue
		}
		if _, ok := seen[phrase]; !ok {
			seen[phrase] = struct{}{}
			result = append(result, phrase)
		}
	}

	return result
}
