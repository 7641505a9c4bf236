package models

import (
	"math"
	"strings"
)

// Base reliability per evidence type. Unknown types score baseUnknown.
const (
	basePrimary   = 0.8
	baseSecondary = 0.6
	baseTertiary  = 0.4
	baseUnknown   = 0.5
)

// sourceRule adjusts the base score when the source mentions any keyword.
// Rules are checked in order and only the first match applies.
type sourceRule struct {
	keywords   []string
	adjustment float64
}

var sourceRules = []sourceRule{
	{keywords: []string{"peer-reviewed", "journal"}, adjustment: 0.15},
	{keywords: []string{"government", "official"}, adjustment: 0.10},
	{keywords: []string{"news", "media"}, adjustment: 0.05},
	{keywords: []string{"blog", "opinion"}, adjustment: -0.10},
}

// linkWeights scales reliability into link strength. Unknown link types
// use defaultLinkWeight.
var linkWeights = map[LinkType]float64{
	LinkSupports:    1.0,
	LinkContradicts: 0.9,
	LinkPartial:     0.7,
	LinkNeutral:     0.5,
}

const defaultLinkWeight = 0.6

// ClampReliability bounds a score to [0, 1]. NaN maps to 0.
func ClampReliability(score float64) float64 {
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// InitialReliability derives the score assigned at creation from the
// evidence type and free-text source. Type matching ignores case; an
// unrecognized type falls back to the neutral base instead of failing.
func InitialReliability(t EvidenceType, source string) float64 {
	score := baseUnknown
	switch EvidenceType(strings.ToUpper(string(t))) {
	case TypePrimary:
		score = basePrimary
	case TypeSecondary:
		score = baseSecondary
	case TypeTertiary:
		score = baseTertiary
	}

	lower := strings.ToLower(source)
	for _, rule := range sourceRules {
		if containsAny(lower, rule.keywords) {
			score += rule.adjustment
			break
		}
	}

	return ClampReliability(score)
}

// LinkStrength is the evidence reliability weighted by link type. It is
// computed once when the link is created.
func LinkStrength(reliability float64, linkType LinkType) float64 {
	weight, ok := linkWeights[LinkType(strings.ToUpper(string(linkType)))]
	if !ok {
		weight = defaultLinkWeight
	}
	return reliability * weight
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
