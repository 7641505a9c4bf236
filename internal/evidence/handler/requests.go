package handler

import (
	"strings"

	"research/internal/evidence/models"
	dErrors "research/pkg/domain-errors"
)

// CreateEvidenceRequest is the body of POST /api/evidence.
type CreateEvidenceRequest struct {
	Content   string `json:"content"`
	SessionID string `json:"sessionId"`
	Type      string `json:"type"`
	Source    string `json:"source"`

	evidenceType models.EvidenceType
}

// Validate trims input and parses the evidence type case-insensitively.
func (r *CreateEvidenceRequest) Validate() error {
	r.Content = strings.TrimSpace(r.Content)
	r.SessionID = strings.TrimSpace(r.SessionID)
	r.Source = strings.TrimSpace(r.Source)
	if r.Content == "" {
		return dErrors.New(dErrors.CodeValidation, "content is required")
	}
	if r.SessionID == "" {
		return dErrors.New(dErrors.CodeValidation, "sessionId is required")
	}
	t, err := models.ParseEvidenceType(r.Type)
	if err != nil {
		return err
	}
	r.evidenceType = t
	return nil
}

// LinkClaimRequest is the body of POST /api/evidence/{evidenceId}/link-claim.
type LinkClaimRequest struct {
	ClaimID  *int64 `json:"claimId"`
	LinkType string `json:"linkType"`

	linkType models.LinkType
}

func (r *LinkClaimRequest) Validate() error {
	if r.ClaimID == nil {
		return dErrors.New(dErrors.CodeValidation, "claimId is required")
	}
	l, err := models.ParseLinkType(r.LinkType)
	if err != nil {
		return err
	}
	r.linkType = l
	return nil
}

// UpdateReliabilityRequest is the body of PUT /api/evidence/{evidenceId}/reliability.
// Out-of-range scores are accepted and clamped by the service.
type UpdateReliabilityRequest struct {
	Score  *float64 `json:"score"`
	Reason string   `json:"reason"`
}

func (r *UpdateReliabilityRequest) Validate() error {
	if r.Score == nil {
		return dErrors.New(dErrors.CodeValidation, "score is required")
	}
	r.Reason = strings.TrimSpace(r.Reason)
	return nil
}

// AddTagsRequest is the body of POST /api/evidence/{evidenceId}/tags.
type AddTagsRequest struct {
	Tags []string `json:"tags"`
}

func (r *AddTagsRequest) Validate() error {
	if r.Tags == nil {
		return dErrors.New(dErrors.CodeValidation, "tags is required")
	}
	return nil
}

// ExtractEvidenceRequest is the body of POST /api/evidence/extract.
type ExtractEvidenceRequest struct {
	Text string `json:"text"`
}

func (r *ExtractEvidenceRequest) Validate() error {
	return nil
}
