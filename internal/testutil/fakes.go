package testutil

import (
	"context"
	"sync"

	"github.com/vk/waveflow/internal/core"
	"github.com/vk/waveflow/internal/registry"
)

// StaticWorkflow is a minimal core.Workflow for tests.
type StaticWorkflow struct {
	WorkflowName string
}

// Name implements core.Workflow.
func (w *StaticWorkflow) Name() string {
	return w.WorkflowName
}

// RecordingSystem is a core.System that records every Submit call and
// optionally fails.
type RecordingSystem struct {
	mu           sync.Mutex
	SubmitErr    error
	Calls        int
	LastWorkflow core.Workflow
}

// Submit implements core.System.
func (s *RecordingSystem) Submit(ctx context.Context, wf core.Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	s.LastWorkflow = wf
	return s.SubmitErr
}

// StaticConfigurator registers pre-built workflow and system objects,
// standing in for a real configuration step.
type StaticConfigurator struct {
	Workflow core.Workflow
	System   core.System
	Err      error
}

// Configure implements core.Configurator.
func (c *StaticConfigurator) Configure(ctx context.Context, reg *registry.Registry) error {
	if c.Err != nil {
		return c.Err
	}
	if err := reg.Register(registry.RoleWorkflow, c.Workflow); err != nil {
		return err
	}
	return reg.Register(registry.RoleSystem, c.System)
}
