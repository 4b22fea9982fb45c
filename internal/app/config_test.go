package app

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Valid(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{
		WorkDir:       "./run1",
		ParameterFile: "parameters.hcl",
		PathFile:      "paths.hcl",
	})
	require.NoError(t, err)
	assert.Equal(t, "./run1", cfg.WorkDir)
}

func TestNewConfig_WorkDirDefaultsToCurrentDirectory(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{
		ParameterFile: "parameters.hcl",
		PathFile:      "paths.hcl",
	})
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.WorkDir)
}

func TestNewConfig_MissingParameterFile(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{PathFile: "paths.hcl"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "ParameterFile")
}

func TestNewConfig_MissingPathFile(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{ParameterFile: "parameters.hcl"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "PathFile")
}

func TestNewApp_IsolatedInstances(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{
		ParameterFile: "parameters.hcl",
		PathFile:      "paths.hcl",
		LogFormat:     "text",
		LogLevel:      "debug",
	})
	require.NoError(t, err)

	a := NewApp(io.Discard, cfg, nil, nil)
	b := NewApp(io.Discard, cfg, nil, nil)

	require.NotNil(t, a.Registry())
	assert.NotSame(t, a.Registry(), b.Registry())
	assert.NotEqual(t, a.RunID(), b.RunID())
	assert.NotEmpty(t, a.RunID())
}
