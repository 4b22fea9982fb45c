// Package testutil provides shared helpers for bootstrap tests: a
// thread-safe log buffer, registry fakes, and a harness that runs the full
// bootstrap against config files written into a temporary directory.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/waveflow/internal/app"
	"github.com/vk/waveflow/internal/core"
	"github.com/vk/waveflow/internal/hclcfg"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a bootstrap test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	TmpDir    string
}

// RunBootstrap provides a standardized harness for end-to-end bootstrap
// tests. It writes the provided files into a fresh temporary directory,
// enters that directory, runs the full bootstrap with the given
// configurator, and restores the original working directory on cleanup.
//
// Tests using this harness must not call t.Parallel: the bootstrap changes
// the process working directory.
func RunBootstrap(t *testing.T, files map[string]string, workDir string, configurator core.Configurator) *HarnessResult {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", ".tmp-bootstrap-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	origWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	appConfig, err := app.NewConfig(app.Config{
		WorkDir:       workDir,
		ParameterFile: "parameters.hcl",
		PathFile:      "paths.hcl",
		LogFormat:     "text",
		LogLevel:      "debug",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(logBuffer, appConfig, hclcfg.NewLoader(), configurator)
	runErr := testApp.Run(context.Background(), appConfig)

	if os.Getenv("WAVEFLOW_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		TmpDir:    tmpDir,
	}
}
