package registry

import (
	"github.com/vk/modkit/internal/module"
	"github.com/vk/modkit/internal/plugin"
	"github.com/vk/modkit/internal/schema"
)

// Module is the interface that all compiled-in packages implement to register
// their plugins.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered plugins and module descriptions for a single
// application instance. It is populated during startup and read-only after
// that, so it needs no locking.
type Registry struct {
	plugins   map[string]*plugin.Info
	modules   map[string]*module.Info
	manifests map[string]*schema.Module
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		plugins:   make(map[string]*plugin.Info),
		modules:   make(map[string]*module.Info),
		manifests: make(map[string]*schema.Module),
	}
}

// RegisterAll lets every package register its plugins.
func (r *Registry) RegisterAll(mods ...Module) {
	for _, m := range mods {
		m.Register(r)
	}
}
