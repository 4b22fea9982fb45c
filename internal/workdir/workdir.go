// Package workdir prepares the run's working directory.
package workdir

import (
	"fmt"
	"os"
)

// Setup creates the target directory if absent and makes it the process's
// current working directory for the remainder of execution. A pre-existing
// directory is not an error, so Setup is idempotent. Every later step
// resolves relative paths against this directory, which is why Setup must
// run after the configuration files are loaded and before the configuration
// step executes.
func Setup(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create working directory %s: %w", path, err)
	}
	if err := os.Chdir(path); err != nil {
		return fmt.Errorf("failed to enter working directory %s: %w", path, err)
	}
	return nil
}
