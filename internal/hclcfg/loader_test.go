package hclcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parameters.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_KeysMatchDeclarationsInOrder(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
workflow = "script"
system   = "multicore"
nproc    = 4
stages   = ["bin/xmeshfem2D", "bin/xspecfem2D"]
`)

	params, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"workflow", "system", "nproc", "stages"}, params.Keys())
}

func TestLoad_ValueTypes(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
name    = "inversion"
steps   = 3
ratio   = 0.5
enabled = true
stages  = ["a", "b"]
solver = {
  bin  = "~/specfem2d/bin"
  procs = 8
}
`)

	params, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	v, _ := params.Get("name")
	assert.Equal(t, "inversion", v)

	v, _ = params.Get("steps")
	assert.Equal(t, int64(3), v)

	v, _ = params.Get("ratio")
	assert.Equal(t, 0.5, v)

	v, _ = params.Get("enabled")
	assert.Equal(t, true, v)

	v, _ = params.Get("stages")
	assert.Equal(t, []any{"a", "b"}, v)

	v, _ = params.Get("solver")
	assert.Equal(t, map[string]any{"bin": "~/specfem2d/bin", "procs": int64(8)}, v)
}

func TestLoad_UnknownKeysPassThrough(t *testing.T) {
	t.Parallel()

	// The loader is schema-agnostic: keys no consumer knows about are
	// preserved unchanged.
	path := writeConfig(t, `
completely_novel_key = "kept"
`)

	params, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	v, ok := params.Get("completely_novel_key")
	require.True(t, ok)
	assert.Equal(t, "kept", v)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "does-not-exist.hcl")
	_, err := NewLoader().Load(context.Background(), missing)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, missing, loadErr.Path)
	assert.True(t, os.IsNotExist(loadErr.Err))
}

func TestLoad_UnparseableFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `steps = [1, 2`)
	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoad_BlocksAreRejected(t *testing.T) {
	t.Parallel()

	// A config file is a flat sequence of name bindings; blocks mean the
	// file is not a valid parameter source.
	path := writeConfig(t, `
steps = 3
solver "specfem2d" {
  nproc = 4
}
`)
	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoad_IdempotentForUnchangedFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
steps = 3
output = "~/out"
`)

	loader := NewLoader()
	first, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	second, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, first.Keys(), second.Keys())
	assert.Equal(t, first.ToMap(), second.ToMap())
}
