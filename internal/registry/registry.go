package registry

import (
	"errors"
	"fmt"
)

// Well-known role names. Consumers may register any other role as well.
const (
	RoleParameters = "parameters"
	RolePaths      = "paths"
	RoleWorkflow   = "workflow"
	RoleSystem     = "system"
)

// ErrUnknownRole is returned by Resolve for a role that was never registered.
var ErrUnknownRole = errors.New("unknown role")

// ErrDuplicateRole is returned by Register for a role that already holds an
// object. Re-registration is forbidden: silently replacing an in-use
// component mid-run would hide a wiring defect.
var ErrDuplicateRole = errors.New("role already registered")

// Registry is a name-keyed store holding exactly one live object per
// registered role for the lifetime of the process. Entries are shared by
// reference with every later bootstrap step; there is no teardown.
type Registry struct {
	entries map[string]any
	order   []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Register stores an object under a role name.
func (r *Registry) Register(role string, component any) error {
	if _, exists := r.entries[role]; exists {
		return fmt.Errorf("register %q: %w", role, ErrDuplicateRole)
	}
	r.entries[role] = component
	r.order = append(r.order, role)
	return nil
}

// Resolve returns the exact object registered under a role.
func (r *Registry) Resolve(role string) (any, error) {
	component, exists := r.entries[role]
	if !exists {
		return nil, fmt.Errorf("resolve %q: %w", role, ErrUnknownRole)
	}
	return component, nil
}

// Has reports whether a role is registered.
func (r *Registry) Has(role string) bool {
	_, exists := r.entries[role]
	return exists
}

// Roles returns all registered role names in registration order.
func (r *Registry) Roles() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
