package models

import (
	"slices"
	"strings"
	"time"
)

// StatusActive is the only status evidence ever has. No lifecycle
// transitions exist yet; the field is kept for API compatibility.
const StatusActive = "ACTIVE"

// Evidence is a content item recorded against a research session.
//
// Invariants:
//   - ID is assigned by the store, is global across sessions and never reused
//   - ReliabilityScore stays within [0, 1]
//   - Tags and LinkedClaims are append-only
//   - Evidence is never deleted
type Evidence struct {
	ID                int64        `json:"id"`
	Content           string       `json:"content"`
	SessionID         string       `json:"sessionId"`
	Type              EvidenceType `json:"type"`
	Source            string       `json:"source"`
	ReliabilityScore  float64      `json:"reliabilityScore"`
	ReliabilityReason string       `json:"reliabilityReason,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	LastVerifiedAt    *time.Time   `json:"lastVerifiedAt,omitempty"`
	Tags              []string     `json:"tags"`
	LinkedClaims      []ClaimLink  `json:"linkedClaims"`
	Status            string       `json:"status"`
}

// ClaimLink ties evidence to an external claim. Strength is a snapshot of
// the evidence reliability at link time and is not recomputed later.
type ClaimLink struct {
	ClaimID   int64     `json:"claimId"`
	LinkType  LinkType  `json:"linkType"`
	Strength  float64   `json:"strength"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEvidence builds unsaved evidence with its derived reliability score.
func NewEvidence(content, sessionID string, t EvidenceType, source string, now time.Time) *Evidence {
	return &Evidence{
		Content:          content,
		SessionID:        sessionID,
		Type:             t,
		Source:           source,
		ReliabilityScore: InitialReliability(t, source),
		CreatedAt:        now,
		Tags:             []string{},
		LinkedClaims:     []ClaimLink{},
		Status:           StatusActive,
	}
}

// LinkClaim appends a link whose strength derives from the current score.
func (e *Evidence) LinkClaim(claimID int64, linkType LinkType, now time.Time) ClaimLink {
	link := ClaimLink{
		ClaimID:   claimID,
		LinkType:  linkType,
		Strength:  LinkStrength(e.ReliabilityScore, linkType),
		CreatedAt: now,
	}
	e.LinkedClaims = append(e.LinkedClaims, link)
	return link
}

// SetReliability overrides the score after verification. Existing claim
// link strengths keep the value computed when they were created.
func (e *Evidence) SetReliability(score float64, reason string, now time.Time) {
	e.ReliabilityScore = ClampReliability(score)
	e.ReliabilityReason = reason
	verified := now
	e.LastVerifiedAt = &verified
}

// AddTags appends tags as given; duplicates are kept.
func (e *Evidence) AddTags(tags []string) {
	e.Tags = append(e.Tags, tags...)
}

// HasClaim reports whether any link references claimID.
func (e *Evidence) HasClaim(claimID int64) bool {
	return slices.ContainsFunc(e.LinkedClaims, func(l ClaimLink) bool {
		return l.ClaimID == claimID
	})
}

// Matches reports whether content, source or any tag contains term,
// ignoring case. An empty term matches everything.
func (e *Evidence) Matches(term string) bool {
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(e.Content), needle) ||
		strings.Contains(strings.ToLower(e.Source), needle) {
		return true
	}
	return slices.ContainsFunc(e.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), needle)
	})
}

// Clone returns a deep copy so callers never share slices with a store.
func (e *Evidence) Clone() *Evidence {
	if e == nil {
		return nil
	}
	c := *e
	c.Tags = append(make([]string, 0, len(e.Tags)), e.Tags...)
	c.LinkedClaims = append(make([]ClaimLink, 0, len(e.LinkedClaims)), e.LinkedClaims...)
	if e.LastVerifiedAt != nil {
		t := *e.LastVerifiedAt
		c.LastVerifiedAt = &t
	}
	return &c
}
