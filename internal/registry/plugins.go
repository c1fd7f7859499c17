package registry

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/modkit/internal/module"
	"github.com/vk/modkit/internal/plugin"
)

// ErrNotFound is returned when an id names no registered plugin.
var ErrNotFound = errors.New("plugin not found")

// RegisterPlugin adds a plugin registration record. Records of kind module
// also get the description of their parameters. Registering an invalid
// record, an id twice or a second type with the same qualified name is a
// programming error and panics.
func (r *Registry) RegisterPlugin(info *plugin.Info) {
	if err := info.Check(); err != nil {
		panic(fmt.Sprintf("invalid plugin registration: %v", err))
	}
	if _, exists := r.plugins[info.ID]; exists {
		panic(fmt.Sprintf("plugin with id '%s' already registered", info.ID))
	}
	name := plugin.TypeName(info.Type)
	for _, other := range r.plugins {
		if other.Type != info.Type && plugin.TypeName(other.Type) == name {
			panic(fmt.Sprintf("plugin '%s': type name %s is already used by a different type registered as '%s'", info.ID, name, other.ID))
		}
	}

	var mi *module.Info
	if info.Kind == plugin.KindModule {
		var err error
		if mi, err = module.NewInfo(info.ID, info.Type, nil); err != nil {
			panic(fmt.Sprintf("invalid module registration: %v", err))
		}
	}

	slog.Debug("Registering plugin.", "id", info.ID, "kind", info.Kind, "type", name)
	r.plugins[info.ID] = info
	if mi != nil {
		r.modules[info.ID] = mi
	}
}

// RegisterModule registers a plugin as a module, whatever kind the record
// names.
func (r *Registry) RegisterModule(info *plugin.Info) {
	info.Kind = plugin.KindModule
	r.RegisterPlugin(info)
}

// Plugin returns the registration record with the given id.
func (r *Registry) Plugin(id string) (*plugin.Info, bool) {
	info, ok := r.plugins[id]
	return info, ok
}

// Plugins returns the registration records of the given kind, or of every
// kind when kind is empty, highest priority first.
func (r *Registry) Plugins(kind string) []*plugin.Info {
	var out []*plugin.Info
	for _, info := range r.plugins {
		if kind == "" || info.Kind == kind {
			out = append(out, info)
		}
	}
	plugin.SortInfos(out)
	return out
}

// Instantiate creates a new instance of the plugin with the given id.
func (r *Registry) Instantiate(id string) (plugin.Plugin, error) {
	info, ok := r.plugins[id]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrNotFound, id)
	}
	return info.New()
}

// InstantiateAll creates one instance of every plugin of the given kind and
// returns them in priority order.
func (r *Registry) InstantiateAll(kind string) ([]plugin.Plugin, error) {
	infos := r.Plugins(kind)
	out := make([]plugin.Plugin, 0, len(infos))
	for _, info := range infos {
		p, err := info.New()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	plugin.Sort(out)
	return out, nil
}

// Module returns the description of the module with the given id.
func (r *Registry) Module(id string) (*module.Info, bool) {
	mi, ok := r.modules[id]
	return mi, ok
}

// Modules returns every module description ordered like Plugins.
func (r *Registry) Modules() []*module.Info {
	infos := r.Plugins(plugin.KindModule)
	out := make([]*module.Info, 0, len(infos))
	for _, info := range infos {
		if mi, ok := r.modules[info.ID]; ok {
			out = append(out, mi)
		}
	}
	return out
}
