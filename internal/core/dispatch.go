package core

import (
	"context"
	"fmt"

	"github.com/vk/waveflow/internal/ctxlog"
	"github.com/vk/waveflow/internal/registry"
)

// Dispatch resolves the registered workflow and system and invokes
// System.Submit exactly once. This is the sole execution trigger in the
// bootstrap. Errors from Submit propagate to the caller untouched; the
// registry is left as-is, so a failed run can still be inspected.
func Dispatch(ctx context.Context, reg *registry.Registry) error {
	wfComponent, err := reg.Resolve(registry.RoleWorkflow)
	if err != nil {
		return err
	}
	sysComponent, err := reg.Resolve(registry.RoleSystem)
	if err != nil {
		return err
	}

	wf, ok := wfComponent.(Workflow)
	if !ok {
		return fmt.Errorf("role %q holds a %T, which does not implement core.Workflow", registry.RoleWorkflow, wfComponent)
	}
	sys, ok := sysComponent.(System)
	if !ok {
		return fmt.Errorf("role %q holds a %T, which does not implement core.System", registry.RoleSystem, sysComponent)
	}

	ctxlog.FromContext(ctx).Info("Submitting workflow to execution backend.", "workflow", wf.Name())
	return sys.Submit(ctx, wf)
}
