package models

import (
	"strings"

	dErrors "research/pkg/domain-errors"
)

// EvidenceType ranks how close the evidence is to the underlying fact.
type EvidenceType string

const (
	TypePrimary   EvidenceType = "PRIMARY"
	TypeSecondary EvidenceType = "SECONDARY"
	TypeTertiary  EvidenceType = "TERTIARY"
)

var validEvidenceTypes = map[EvidenceType]bool{
	TypePrimary:   true,
	TypeSecondary: true,
	TypeTertiary:  true,
}

// IsValid reports whether t is one of the supported evidence types.
func (t EvidenceType) IsValid() bool {
	return validEvidenceTypes[t]
}

// ParseEvidenceType accepts any casing and surrounding whitespace.
func ParseEvidenceType(s string) (EvidenceType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "type cannot be empty")
	}
	t := EvidenceType(strings.ToUpper(s))
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "type must be one of PRIMARY, SECONDARY, TERTIARY")
	}
	return t, nil
}

// LinkType describes how a piece of evidence bears on a claim.
type LinkType string

const (
	LinkSupports    LinkType = "SUPPORTS"
	LinkContradicts LinkType = "CONTRADICTS"
	LinkNeutral     LinkType = "NEUTRAL"
	LinkPartial     LinkType = "PARTIAL"
)

var validLinkTypes = map[LinkType]bool{
	LinkSupports:    true,
	LinkContradicts: true,
	LinkNeutral:     true,
	LinkPartial:     true,
}

func (l LinkType) IsValid() bool {
	return validLinkTypes[l]
}

// ParseLinkType accepts any casing and surrounding whitespace.
func ParseLinkType(s string) (LinkType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "linkType cannot be empty")
	}
	l := LinkType(strings.ToUpper(s))
	if !l.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "linkType must be one of SUPPORTS, CONTRADICTS, NEUTRAL, PARTIAL")
	}
	return l, nil
}
