package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/modkit/internal/ctxlog"
	"github.com/vk/modkit/internal/registry"
	"github.com/vk/modkit/internal/script"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	ctx      context.Context
	registry *registry.Registry
	config   *Config
}

// NewApp is the constructor for the main application. It configures an
// isolated logger, registers the compiled-in modules (or the given ones) and
// overlays the configured manifests. Validation is left to Validate so that
// callers can report every problem at once.
func NewApp(ctx context.Context, outW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	reg.RegisterAll(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules))

	if cfg.ManifestsPath != "" {
		if err := reg.LoadManifestsRecursively(ctx, cfg.ManifestsPath); err != nil {
			return nil, fmt.Errorf("failed to load manifests: %w", err)
		}
	} else {
		logger.Debug("No manifests path configured, using struct tag metadata only.")
	}

	return &App{
		outW:     outW,
		logger:   logger,
		ctx:      ctx,
		registry: reg,
		config:   cfg,
	}, nil
}

// Context returns the application context, which carries the logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Registry returns the application's registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Config returns the configuration the app was built with.
func (a *App) Config() *Config {
	return a.config
}

// Validate checks the registry against the loaded manifests.
func (a *App) Validate() error {
	if err := a.registry.ValidateRegistry(a.ctx); err != nil {
		return err
	}
	a.logger.Debug("Registry validation passed.")
	return nil
}

// Scripts discovers scripts in dirs, or in the configured directories when
// dirs is empty.
func (a *App) Scripts(dirs ...string) ([]*script.Info, error) {
	if len(dirs) == 0 {
		dirs = a.config.ScriptDirs
	}

	finder := script.NewFinder(dirs...)
	if len(a.config.ScriptExtensions) > 0 {
		finder.Languages = finder.Languages.Restrict(a.config.ScriptExtensions)
	}
	for dir, menu := range a.config.MenuPrefixes {
		finder.Prefixes[dir] = script.ParseMenuPath(menu)
	}

	return finder.Find(a.ctx)
}
