// Package env_vars provides a module that exposes the process environment.
package env_vars

import (
	"context"
	"os"
	"strings"

	"github.com/vk/modkit/internal/plugin"
	"github.com/vk/modkit/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// EnvVars collects environment variables whose name starts with Prefix.
type EnvVars struct {
	plugin.SortablePlugin

	Prefix    string            `param:"optional" label:"Name prefix"`
	StripName bool              `param:"optional" label:"Strip prefix from names"`
	All       map[string]string `param:"output" label:"Variables" attrs:"readonly"`
}

// Run fills All from the current environment.
func (e *EnvVars) Run(ctx context.Context) error {
	e.All = make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, e.Prefix) {
			continue
		}
		if e.StripName {
			name = strings.TrimPrefix(name, e.Prefix)
		}
		e.All[name] = value
	}
	return ctx.Err()
}

// Register registers the module with the registry.
func (m *Module) Register(r *registry.Registry) {
	info := plugin.InfoFor[EnvVars]("env_vars", "Environment Variables")
	info.Priority = plugin.High
	info.MenuPath = "Plugins > Utilities > Environment"
	r.RegisterModule(info)
}
