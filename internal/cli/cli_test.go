package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalManifestPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse([]string{"manifests/"}, out)

	// --- Assert ---
	require.NoError(t, err)
	assert.False(t, shouldExit)
	require.NotNil(t, config)
	assert.Equal(t, "manifests/", config.ManifestPath)
	assert.Equal(t, "make", config.Format, "make is the default output format")
	assert.Equal(t, 4, config.WorkerCount)
	assert.False(t, config.Watch)
}

func TestParse_FlagsOverridePositional(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{
		"-manifest", "a.hcl",
		"-target", "full",
		"-format", "JSON",
		"-o", "out.json",
		"-watch",
		"-workers", "8",
		"-log-level", "debug",
		"ignored-positional",
	}

	// --- Act ---
	config, shouldExit, err := Parse(args, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "a.hcl", config.ManifestPath)
	assert.Equal(t, "full", config.Target)
	assert.Equal(t, "json", config.Format, "format is lower-cased during validation")
	assert.Equal(t, "out.json", config.OutputPath)
	assert.True(t, config.Watch)
	assert.Equal(t, 8, config.WorkerCount)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse(nil, out)

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		args        []string
		errContains string
	}{
		{
			name:        "bad format",
			args:        []string{"-format", "xml", "a.hcl"},
			errContains: "invalid format",
		},
		{
			name:        "bad log format",
			args:        []string{"-log-format", "pretty", "a.hcl"},
			errContains: "invalid log-format",
		},
		{
			name:        "bad log level",
			args:        []string{"-log-level", "verbose", "a.hcl"},
			errContains: "invalid log-level",
		},
		{
			name:        "zero workers",
			args:        []string{"-workers", "0", "a.hcl"},
			errContains: "WorkerCount",
		},
		{
			name:        "unknown flag",
			args:        []string{"--no-such-flag"},
			errContains: "flag provided but not defined",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			config, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, config)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "parse failures must carry an exit code")
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.errContains)
		})
	}
}
