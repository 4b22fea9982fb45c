package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir moves into dir for the duration of the test. The bootstrap changes
// the working directory itself, so these tests cannot run in parallel.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestRun_EndToEnd(t *testing.T) {
	// --- Arrange ---
	tempDir := t.TempDir()
	parameters := `
workflow = "script"
system   = "serial"
stages   = ["echo stage one", "echo stage two"]
`
	paths := `
output = "~/out"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "parameters.hcl"), []byte(parameters), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "paths.hcl"), []byte(paths), 0600))
	chdir(t, tempDir)

	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"--workdir", "./run1", "--log-level", "debug"})

	// --- Assert ---
	require.NoError(t, err)
	info, statErr := os.Stat(filepath.Join(tempDir, "run1"))
	require.NoError(t, statErr)
	require.True(t, info.IsDir())
}

func TestRun_MissingParameterFile(t *testing.T) {
	// --- Arrange ---
	tempDir := t.TempDir()
	chdir(t, tempDir)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"--workdir", "./run1"})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load parameter file")

	// The failure happens before any directory is created.
	_, statErr := os.Stat(filepath.Join(tempDir, "run1"))
	require.True(t, os.IsNotExist(statErr))
}

func TestRun_FailingStageExitsNonZero(t *testing.T) {
	// --- Arrange ---
	tempDir := t.TempDir()
	parameters := `
workflow = "script"
system   = "serial"
stages   = ["exit 9"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "parameters.hcl"), []byte(parameters), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "paths.hcl"), []byte("output = \"/tmp/out\"\n"), 0600))
	chdir(t, tempDir)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"--workdir", "./run1"})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "execution failed")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
