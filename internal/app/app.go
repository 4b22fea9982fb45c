package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vk/waveflow/internal/config"
	"github.com/vk/waveflow/internal/core"
	"github.com/vk/waveflow/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW         io.Writer
	logger       *slog.Logger
	registry     *registry.Registry
	loader       config.Loader
	configurator core.Configurator
	runID        string
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. The
// registry is the single shared component store for this run; it is passed
// explicitly to the configuration step and the dispatcher, never held in a
// package-level variable.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, configurator core.Configurator) *App {
	runID := uuid.NewString()
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW).With("run_id", runID)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:         outW,
		logger:       logger,
		registry:     registry.New(),
		loader:       loader,
		configurator: configurator,
		runID:        runID,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// RunID returns the unique identifier assigned to this run.
func (a *App) RunID() string {
	return a.runID
}
