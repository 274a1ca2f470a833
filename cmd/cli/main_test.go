package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A full manifest with a sibling dependency that exists on disk.
	dir := t.TempDir()
	siblingPath := filepath.Join(dir, "sonlib")
	require.NoError(t, os.MkdirAll(filepath.Join(siblingPath, "lib"), 0o755))

	manifest := fmt.Sprintf(`
project {
  root = "/proj"

  sibling "sonlib" {
    path         = %q
    core_archive = "sonLib.a"
    test_archive = "cuTest.a"
  }
}

target "default" {
  cflags = ["-O3"]
}
`, siblingPath)
	manifestPath := filepath.Join(dir, "project.hcl")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, []string{"-log-level", "error", manifestPath})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), "binPath := /proj/bin")
	assert.Contains(t, out.String(), filepath.Join(siblingPath, "lib", "sonLib.a"))
}

func TestRun_ResolutionFailureNamesThePath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	missing := filepath.Join(dir, "nonexistent")
	manifest := fmt.Sprintf(`
project {
  root = "/proj"

  sibling "sonlib" {
    path         = %q
    core_archive = "sonLib.a"
    test_archive = "cuTest.a"
  }
}

target "default" {}
`, missing)
	manifestPath := filepath.Join(dir, "project.hcl")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o600))

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-log-level", "error", manifestPath})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing dependency")
	assert.Contains(t, err.Error(), missing)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(&bytes.Buffer{}, logs, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	assert.Contains(t, logs.String(), "Usage:", "Expected help text to be printed")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
