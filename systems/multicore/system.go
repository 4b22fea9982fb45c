// Package multicore provides the built-in concurrent execution backend. All
// stages of a staged workflow run as shell subprocesses with bounded
// parallelism; the "nproc" parameter caps the number of concurrent stages
// and defaults to the machine's CPU count.
package multicore

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/sync/errgroup"

	"github.com/vk/waveflow/internal/config"
	"github.com/vk/waveflow/internal/configure"
	"github.com/vk/waveflow/internal/core"
	"github.com/vk/waveflow/internal/ctxlog"
)

type settings struct {
	NProc int `mapstructure:"nproc"`
}

// System runs a staged workflow's stages concurrently.
type System struct {
	nproc int
}

// Register attaches this backend's factory to a configuration step.
func Register(step *configure.Step) {
	step.RegisterSystem("multicore", New)
}

// New constructs the multicore backend from the "nproc" parameter.
func New(ctx context.Context, params, paths *config.ParameterSet) (core.System, error) {
	var s settings
	if err := mapstructure.Decode(params.ToMap(), &s); err != nil {
		return nil, fmt.Errorf("invalid nproc parameter: %w", err)
	}
	if s.NProc < 0 {
		return nil, fmt.Errorf("nproc must not be negative, got %d", s.NProc)
	}
	if s.NProc == 0 {
		s.NProc = runtime.NumCPU()
	}
	return &System{nproc: s.NProc}, nil
}

// Submit implements core.System. The first stage failure cancels the
// remaining stages.
func (s *System) Submit(ctx context.Context, wf core.Workflow) error {
	staged, ok := wf.(core.Staged)
	if !ok {
		return fmt.Errorf("workflow %q provides no stages to run", wf.Name())
	}

	logger := ctxlog.FromContext(ctx)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.nproc)

	for _, stage := range staged.Stages() {
		g.Go(func() error {
			logger.Info("Running stage.", "stage", stage.Name, "command", stage.Command)
			if err := runStage(ctx, stage); err != nil {
				return fmt.Errorf("stage %s failed: %w", stage.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func runStage(ctx context.Context, stage core.Stage) error {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", stage.Command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
