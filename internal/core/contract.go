package core

import (
	"context"

	"github.com/vk/waveflow/internal/registry"
)

// Workflow represents "what to run". It is opaque to the bootstrap; concrete
// execution backends assert richer interfaces (see Staged) as needed.
type Workflow interface {
	Name() string
}

// System represents "how and where to run it". Submit is the single handoff
// operation the bootstrap depends on; any error it returns is fatal and
// propagates unmodified to the process boundary. The bootstrap blocks on
// Submit with no timeout of its own; cancellation, retries, and partial
// failure are entirely the System's concern.
type System interface {
	Submit(ctx context.Context, wf Workflow) error
}

// Configurator is the configuration step contract. It receives a registry
// already holding "parameters" and "paths", with the working directory
// already current, and must register "workflow" and "system" before
// returning.
type Configurator interface {
	Configure(ctx context.Context, reg *registry.Registry) error
}
