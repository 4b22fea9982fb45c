package configure

import (
	"context"
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/vk/waveflow/internal/config"
	"github.com/vk/waveflow/internal/core"
	"github.com/vk/waveflow/internal/ctxlog"
	"github.com/vk/waveflow/internal/registry"
)

// WorkflowFactory constructs a workflow from the loaded parameter and path
// sets.
type WorkflowFactory func(ctx context.Context, params, paths *config.ParameterSet) (core.Workflow, error)

// SystemFactory constructs an execution backend from the loaded parameter
// and path sets.
type SystemFactory func(ctx context.Context, params, paths *config.ParameterSet) (core.System, error)

// selection is the only schema the step itself imposes on the parameter
// file. Every other key passes through to the selected implementations.
type selection struct {
	Workflow string `mapstructure:"workflow"`
	System   string `mapstructure:"system"`
}

// Step is the default Configurator implementation.
type Step struct {
	workflows map[string]WorkflowFactory
	systems   map[string]SystemFactory
}

// New creates a Step with no factories registered.
func New() *Step {
	return &Step{
		workflows: make(map[string]WorkflowFactory),
		systems:   make(map[string]SystemFactory),
	}
}

// RegisterWorkflow registers a workflow factory under a name. Registering
// the same name twice is a programmer error.
func (s *Step) RegisterWorkflow(name string, factory WorkflowFactory) {
	if _, exists := s.workflows[name]; exists {
		panic(fmt.Sprintf("workflow factory with name '%s' already registered", name))
	}
	s.workflows[name] = factory
}

// RegisterSystem registers a system factory under a name. Registering the
// same name twice is a programmer error.
func (s *Step) RegisterSystem(name string, factory SystemFactory) {
	if _, exists := s.systems[name]; exists {
		panic(fmt.Sprintf("system factory with name '%s' already registered", name))
	}
	s.systems[name] = factory
}

// Configure implements core.Configurator. It resolves the parameter and
// path sets, selects implementations by name, constructs them, and
// registers the results under the "workflow" and "system" roles.
func (s *Step) Configure(ctx context.Context, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)

	params, err := resolveSet(reg, registry.RoleParameters)
	if err != nil {
		return err
	}
	paths, err := resolveSet(reg, registry.RolePaths)
	if err != nil {
		return err
	}

	sel := selection{Workflow: "script", System: "serial"}
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &sel,
		Metadata: &md,
	})
	if err != nil {
		return fmt.Errorf("failed to build selection decoder: %w", err)
	}
	if err := dec.Decode(params.ToMap()); err != nil {
		return fmt.Errorf("failed to decode workflow/system selection: %w", err)
	}
	// Unknown keys are legitimate: they belong to the selected
	// implementations, which decode them against their own settings.
	logger.Debug("Selection decoded.", "workflow", sel.Workflow, "system", sel.System, "extra_keys", md.Unused)

	workflowFactory, ok := s.workflows[sel.Workflow]
	if !ok {
		return fmt.Errorf("unknown workflow %q (known: %v)", sel.Workflow, sortedNames(s.workflows))
	}
	systemFactory, ok := s.systems[sel.System]
	if !ok {
		return fmt.Errorf("unknown system %q (known: %v)", sel.System, sortedNames(s.systems))
	}

	wf, err := workflowFactory(ctx, params, paths)
	if err != nil {
		return fmt.Errorf("failed to construct workflow %q: %w", sel.Workflow, err)
	}
	sys, err := systemFactory(ctx, params, paths)
	if err != nil {
		return fmt.Errorf("failed to construct system %q: %w", sel.System, err)
	}

	if err := reg.Register(registry.RoleWorkflow, wf); err != nil {
		return err
	}
	if err := reg.Register(registry.RoleSystem, sys); err != nil {
		return err
	}
	logger.Debug("Configuration step finished.", "workflow", sel.Workflow, "system", sel.System)
	return nil
}

func resolveSet(reg *registry.Registry, role string) (*config.ParameterSet, error) {
	component, err := reg.Resolve(role)
	if err != nil {
		return nil, err
	}
	ps, ok := component.(*config.ParameterSet)
	if !ok {
		return nil, fmt.Errorf("role %q holds a %T, expected *config.ParameterSet", role, component)
	}
	return ps, nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
