// Package print provides a module that writes key/value pairs.
package print

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/vk/modkit/internal/ctxlog"
	"github.com/vk/modkit/internal/plugin"
	"github.com/vk/modkit/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Print writes each entry of Value on its own line, sorted by key.
type Print struct {
	plugin.SortablePlugin

	Value  map[string]string `param:"" label:"Values" description:"Entries to print."`
	Prefix string            `param:"optional" label:"Prefix" persistKey:"print.prefix"`
	Indent int               `param:"optional" label:"Indent" min:"0" max:"12" step:"2" columns:"2"`
	Quote  bool              `param:"optional,noautofill" label:"Quote values"`
}

// Run writes the entries to w.
func (p *Print) Run(ctx context.Context, w io.Writer) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Printing input", "entries", len(p.Value))

	pad := strings.Repeat(" ", p.Indent)
	if p.Value == nil {
		_, err := fmt.Fprintf(w, "%s%s(null)\n", pad, p.Prefix)
		return err
	}

	keys := make([]string, 0, len(p.Value))
	for k := range p.Value {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v := p.Value[k]
		if p.Quote {
			v = fmt.Sprintf("%q", v)
		}
		if _, err := fmt.Fprintf(w, "%s%s%s = %s\n", pad, p.Prefix, k, v); err != nil {
			return err
		}
	}
	return nil
}

// Register registers the module with the registry.
func (m *Module) Register(r *registry.Registry) {
	info := plugin.InfoFor[Print]("print", "Print")
	info.MenuPath = "Plugins > Utilities > Print"
	r.RegisterModule(info)
}
