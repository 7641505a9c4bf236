package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "research/pkg/domain-errors"
)

func TestParseEvidenceType(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		typ, err := ParseEvidenceType("  secondary ")
		require.NoError(t, err)
		assert.Equal(t, TypeSecondary, typ)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseEvidenceType(" ")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects unknown", func(t *testing.T) {
		_, err := ParseEvidenceType("quaternary")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestParseLinkType(t *testing.T) {
	for _, in := range []string{"supports", "Contradicts", "NEUTRAL", "partial"} {
		l, err := ParseLinkType(in)
		require.NoError(t, err, in)
		assert.True(t, l.IsValid())
	}

	_, err := ParseLinkType("refutes")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
