package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/waveflow/internal/core"
	"github.com/vk/waveflow/internal/ctxlog"
	"github.com/vk/waveflow/internal/pathexp"
	"github.com/vk/waveflow/internal/registry"
	"github.com/vk/waveflow/internal/workdir"
)

// Run executes the bootstrap sequence. The steps are strictly sequential:
// no step begins before the previous one completes. Nothing is retried or
// recovered here; every error propagates to the caller and terminates the
// run.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// Configuration files are loaded before the working directory changes,
	// so caller-supplied relative paths resolve against the invocation
	// directory.
	params, err := a.loader.Load(ctx, appConfig.ParameterFile)
	if err != nil {
		return fmt.Errorf("failed to load parameter file: %w", err)
	}
	a.logger.Debug("Parameter file loaded.", "keys", params.Len())

	paths, err := a.loader.Load(ctx, appConfig.PathFile)
	if err != nil {
		return fmt.Errorf("failed to load path file: %w", err)
	}
	a.logger.Debug("Path file loaded.", "keys", paths.Len())

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}
	paths = pathexp.Expand(paths, home)

	if err := a.registry.Register(registry.RoleParameters, params); err != nil {
		return err
	}
	if err := a.registry.Register(registry.RolePaths, paths); err != nil {
		return err
	}

	if err := workdir.Setup(appConfig.WorkDir); err != nil {
		return err
	}
	a.logger.Debug("Working directory ready.", "dir", appConfig.WorkDir)

	if err := a.configurator.Configure(ctx, a.registry); err != nil {
		return fmt.Errorf("configuration step failed: %w", err)
	}
	a.logger.Debug("Configuration step completed.", "roles", a.registry.Roles())

	a.logger.Info("🚀 Handing off to execution backend...")
	if err := core.Dispatch(ctx, a.registry); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 Run finished.")

	a.logger.Debug("App.Run method finished.")
	return nil
}
