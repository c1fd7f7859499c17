// Package schema defines the HCL structure of module manifests.
//
// A manifest adjusts how compiled-in modules present themselves without
// recompiling them:
//
//	module "blur.gauss" {
//	  title     = "Gaussian Blur"
//	  priority  = "high"
//	  menu_path = "Process > Filters"
//
//	  parameter "Radius" {
//	    label     = "Radius (px)"
//	    min       = 0
//	    max       = 250
//	    step_size = 0.5
//	    attrs     = { unit = "px" }
//	  }
//	}
//
// Numbers given for min, max, step_size and choices are converted to their
// literal string form while decoding, so they go through the same coercion as
// struct tag literals.
package schema

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/modkit/internal/param"
	"github.com/vk/modkit/internal/plugin"
)

// ManifestFile represents the top-level structure of a manifest file.
type ManifestFile struct {
	Modules []*Module `hcl:"module,block"`
	Body    hcl.Body  `hcl:",remain"`
}

// Module adjusts the registration of one module and its parameters.
type Module struct {
	ID         string       `hcl:"id,label"`
	Title      *string      `hcl:"title,optional"`
	Priority   *string      `hcl:"priority,optional"`
	MenuPath   *string      `hcl:"menu_path,optional"`
	Icon       *string      `hcl:"icon,optional"`
	Parameters []*Parameter `hcl:"parameter,block"`

	// Source is the file the block was read from.
	Source string
}

// Parameter overrides the metadata of one parameter field, named by its Go
// field name.
type Parameter struct {
	Field       string            `hcl:"field,label"`
	Label       *string           `hcl:"label,optional"`
	Description *string           `hcl:"description,optional"`
	IO          *string           `hcl:"io,optional"`
	Visibility  *string           `hcl:"visibility,optional"`
	Required    *bool             `hcl:"required,optional"`
	AutoFill    *bool             `hcl:"autofill,optional"`
	Persist     *bool             `hcl:"persist,optional"`
	PersistKey  *string           `hcl:"persist_key,optional"`
	Initializer *string           `hcl:"initializer,optional"`
	Callback    *string           `hcl:"callback,optional"`
	Style       *string           `hcl:"style,optional"`
	Min         *string           `hcl:"min,optional"`
	Max         *string           `hcl:"max,optional"`
	StepSize    *string           `hcl:"step_size,optional"`
	Choices     []string          `hcl:"choices,optional"`
	Columns     *int              `hcl:"columns,optional"`
	Attrs       map[string]string `hcl:"attrs,optional"`
}

// Override converts the block into a metadata override. Attributes are added
// in key order since HCL maps are unordered.
func (p *Parameter) Override() (param.Override, error) {
	o := param.Override{
		Required:    p.Required,
		AutoFill:    p.AutoFill,
		Persist:     p.Persist,
		PersistKey:  p.PersistKey,
		Initializer: p.Initializer,
		Callback:    p.Callback,
		Style:       p.Style,
		Min:         p.Min,
		Max:         p.Max,
		StepSize:    p.StepSize,
		Choices:     p.Choices,
		Columns:     p.Columns,
		Label:       p.Label,
		Description: p.Description,
	}

	if p.IO != nil {
		io, err := param.ParseIO(*p.IO)
		if err != nil {
			return param.Override{}, fmt.Errorf("parameter '%s': %w", p.Field, err)
		}
		o.IO = &io
	}
	if p.Visibility != nil {
		v, err := param.ParseVisibility(*p.Visibility)
		if err != nil {
			return param.Override{}, fmt.Errorf("parameter '%s': %w", p.Field, err)
		}
		o.Visibility = &v
	}
	if p.Columns != nil && *p.Columns < 0 {
		return param.Override{}, fmt.Errorf("parameter '%s': columns must not be negative", p.Field)
	}

	keys := make([]string, 0, len(p.Attrs))
	for k := range p.Attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		o.Attrs = append(o.Attrs, param.Attr{Name: k, Value: p.Attrs[k]})
	}
	return o, nil
}

// Overrides converts every parameter block, keyed by field name.
func (m *Module) Overrides() (map[string]param.Override, error) {
	out := make(map[string]param.Override, len(m.Parameters))
	for _, p := range m.Parameters {
		if _, dup := out[p.Field]; dup {
			return nil, fmt.Errorf("module '%s': parameter '%s' declared more than once", m.ID, p.Field)
		}
		o, err := p.Override()
		if err != nil {
			return nil, fmt.Errorf("module '%s': %w", m.ID, err)
		}
		out[p.Field] = o
	}
	return out, nil
}

// ParsePriority accepts a well-known priority name ("high", "very-low", ...)
// or a decimal number.
func ParsePriority(s string) (float64, error) {
	if v, ok := plugin.ParsePriority(s); ok {
		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid priority %q: must be a number or a name such as 'high' or 'low'", s)
	}
	return v, nil
}

// Apply copies the presentation attributes of the manifest onto a plugin
// registration record.
func (m *Module) Apply(info *plugin.Info) error {
	if m.Priority != nil {
		p, err := ParsePriority(*m.Priority)
		if err != nil {
			return fmt.Errorf("module '%s': %w", m.ID, err)
		}
		info.Priority = p
	}
	if m.Title != nil {
		info.Title = *m.Title
	}
	if m.MenuPath != nil {
		info.MenuPath = *m.MenuPath
	}
	if m.Icon != nil {
		info.IconPath = *m.Icon
	}
	return nil
}
