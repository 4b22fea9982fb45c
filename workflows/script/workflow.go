// Package script provides the built-in staged workflow: an ordered list of
// shell commands read from the "stages" parameter, executed in the run's
// working directory by whichever system is selected.
package script

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/vk/waveflow/internal/config"
	"github.com/vk/waveflow/internal/configure"
	"github.com/vk/waveflow/internal/core"
)

// settings is the slice of the parameter file this workflow consumes.
// Unknown keys are ignored here; other components decode their own.
type settings struct {
	Stages []string `mapstructure:"stages"`
}

// Workflow is an ordered list of named shell stages.
type Workflow struct {
	stages []core.Stage
}

// Name implements core.Workflow.
func (w *Workflow) Name() string {
	return "script"
}

// Stages implements core.Staged.
func (w *Workflow) Stages() []core.Stage {
	return w.stages
}

// Register attaches this workflow's factory to a configuration step.
func Register(step *configure.Step) {
	step.RegisterWorkflow("script", New)
}

// New builds a script workflow from the "stages" parameter.
func New(ctx context.Context, params, paths *config.ParameterSet) (core.Workflow, error) {
	var s settings
	if err := mapstructure.Decode(params.ToMap(), &s); err != nil {
		return nil, fmt.Errorf("invalid stages parameter: %w", err)
	}

	stages := make([]core.Stage, len(s.Stages))
	for i, command := range s.Stages {
		stages[i] = core.Stage{
			Name:    fmt.Sprintf("stage-%02d", i+1),
			Command: command,
		}
	}
	return &Workflow{stages: stages}, nil
}
