// Package serial provides the built-in sequential execution backend. Each
// stage runs as a shell subprocess in the current working directory, one at
// a time; the first failure aborts the run.
package serial

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/vk/waveflow/internal/config"
	"github.com/vk/waveflow/internal/configure"
	"github.com/vk/waveflow/internal/core"
	"github.com/vk/waveflow/internal/ctxlog"
)

// System runs a staged workflow's stages strictly in order.
type System struct{}

// Register attaches this backend's factory to a configuration step.
func Register(step *configure.Step) {
	step.RegisterSystem("serial", New)
}

// New constructs the serial backend. It has no settings of its own.
func New(ctx context.Context, params, paths *config.ParameterSet) (core.System, error) {
	return &System{}, nil
}

// Submit implements core.System.
func (s *System) Submit(ctx context.Context, wf core.Workflow) error {
	staged, ok := wf.(core.Staged)
	if !ok {
		return fmt.Errorf("workflow %q provides no stages to run", wf.Name())
	}

	logger := ctxlog.FromContext(ctx)
	for _, stage := range staged.Stages() {
		logger.Info("Running stage.", "stage", stage.Name, "command", stage.Command)
		if err := runStage(ctx, stage); err != nil {
			return fmt.Errorf("stage %s failed: %w", stage.Name, err)
		}
	}
	return nil
}

func runStage(ctx context.Context, stage core.Stage) error {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", stage.Command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
