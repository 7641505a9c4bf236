package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"research/internal/evidence/extract"
)

func TestRunExtract(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("Research shows X. The sky is blue. Data reveals Y")

	require.NoError(t, runExtract(in, &out, extract.New()))
	assert.Equal(t, "Research shows X\nData reveals Y\n", out.String())
}

func TestExtractCommand(t *testing.T) {
	t.Run("reads a file with extra markers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("Sources confirm Z. Nothing here"), 0o600))

		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"extract", "--marker", "sources confirm", path})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "Sources confirm Z\n", out.String())
	})

	t.Run("reads stdin", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetIn(strings.NewReader("According to the survey, most agree."))
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"extract"})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "According to the survey, most agree.\n", out.String())
	})

	t.Run("missing file", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"extract", filepath.Join(t.TempDir(), "missing.txt")})
		assert.Error(t, cmd.Execute())
	})
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, version+"\n", out.String())
}
