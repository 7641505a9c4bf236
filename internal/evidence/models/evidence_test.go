package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func TestNewEvidence(t *testing.T) {
	e := NewEvidence("Research shows X", "s1", TypePrimary, "peer-reviewed journal", fixedNow)

	assert.Zero(t, e.ID)
	assert.InDelta(t, 0.95, e.ReliabilityScore, 1e-9)
	assert.Equal(t, StatusActive, e.Status)
	assert.Equal(t, fixedNow, e.CreatedAt)
	assert.Nil(t, e.LastVerifiedAt)
	assert.NotNil(t, e.Tags)
	assert.Empty(t, e.Tags)
	assert.NotNil(t, e.LinkedClaims)
	assert.Empty(t, e.LinkedClaims)
}

func TestLinkStrengthIsNotRecomputedAfterVerification(t *testing.T) {
	e := NewEvidence("c", "s1", TypePrimary, "", fixedNow)
	link := e.LinkClaim(7, LinkContradicts, fixedNow)
	assert.InDelta(t, 0.72, link.Strength, 1e-9)

	later := fixedNow.Add(time.Hour)
	e.SetReliability(0.2, "retracted", later)

	require.Len(t, e.LinkedClaims, 1)
	assert.InDelta(t, 0.72, e.LinkedClaims[0].Strength, 1e-9)
	assert.Equal(t, 0.2, e.ReliabilityScore)
	assert.Equal(t, "retracted", e.ReliabilityReason)
	require.NotNil(t, e.LastVerifiedAt)
	assert.Equal(t, later, *e.LastVerifiedAt)
}

func TestSetReliabilityClamps(t *testing.T) {
	e := NewEvidence("c", "s1", TypeSecondary, "", fixedNow)

	e.SetReliability(1.5, "x", fixedNow)
	assert.Equal(t, 1.0, e.ReliabilityScore)

	e.SetReliability(-0.3, "x", fixedNow)
	assert.Equal(t, 0.0, e.ReliabilityScore)
}

func TestAddTagsKeepsDuplicates(t *testing.T) {
	e := NewEvidence("c", "s1", TypeSecondary, "", fixedNow)
	e.AddTags([]string{"climate", "ipcc"})
	e.AddTags([]string{"climate"})

	assert.Equal(t, []string{"climate", "ipcc", "climate"}, e.Tags)
}

func TestMatches(t *testing.T) {
	e := NewEvidence("Global temperatures rose", "s1", TypePrimary, "NASA dataset", fixedNow)
	e.AddTags([]string{"Climate"})

	assert.True(t, e.Matches("TEMPERATURES"))
	assert.True(t, e.Matches("nasa"))
	assert.True(t, e.Matches("clim"))
	assert.True(t, e.Matches(""))
	assert.False(t, e.Matches("ocean"))
}

func TestHasClaim(t *testing.T) {
	e := NewEvidence("c", "s1", TypePrimary, "", fixedNow)
	e.LinkClaim(3, LinkSupports, fixedNow)

	assert.True(t, e.HasClaim(3))
	assert.False(t, e.HasClaim(4))
}

func TestCloneIsDeep(t *testing.T) {
	e := NewEvidence("c", "s1", TypePrimary, "", fixedNow)
	e.AddTags([]string{"a"})
	e.LinkClaim(1, LinkSupports, fixedNow)
	e.SetReliability(0.5, "checked", fixedNow)

	c := e.Clone()
	c.Tags[0] = "b"
	c.LinkedClaims[0].ClaimID = 99
	*c.LastVerifiedAt = fixedNow.Add(time.Hour)

	assert.Equal(t, "a", e.Tags[0])
	assert.Equal(t, int64(1), e.LinkedClaims[0].ClaimID)
	assert.Equal(t, fixedNow, *e.LastVerifiedAt)
	assert.Nil(t, (*Evidence)(nil).Clone())
}

func TestComputeStatistics(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		stats := ComputeStatistics(nil)
		assert.Equal(t, Statistics{}, stats)
	})

	t.Run("counts per type and linked", func(t *testing.T) {
		a := NewEvidence("a", "s1", TypePrimary, "", fixedNow)     // 0.8
		b := NewEvidence("b", "s1", TypeSecondary, "", fixedNow)   // 0.6
		c := NewEvidence("c", "s1", TypeTertiary, "blog", fixedNow) // 0.3
		b.LinkClaim(1, LinkSupports, fixedNow)

		stats := ComputeStatistics([]*Evidence{a, b, c})
		assert.Equal(t, 3, stats.TotalEvidence)
		assert.Equal(t, 1, stats.PrimaryCount)
		assert.Equal(t, 1, stats.SecondaryCount)
		assert.Equal(t, 1, stats.TertiaryCount)
		assert.Equal(t, 1, stats.LinkedCount)
		assert.InDelta(t, 1.7/3, stats.AverageReliability, 1e-9)
	})
}
