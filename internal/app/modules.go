package app

import (
	"github.com/vk/waveflow/internal/configure"
	"github.com/vk/waveflow/systems/multicore"
	"github.com/vk/waveflow/systems/serial"
	"github.com/vk/waveflow/workflows/script"
)

// DefaultConfigurator builds the configuration step with all built-in
// workflow and system implementations registered.
func DefaultConfigurator() *configure.Step {
	step := configure.New()

	// --- Built-in registration section ---
	script.Register(step)
	serial.Register(step)
	multicore.Register(step)
	// --- Built-in registration section ---

	return step
}
