// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package param

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Struct tag keys read by FromField.
const (
	TagParam       = "param"
	TagLabel       = "label"
	TagDescription = "description"
	TagMin         = "min"
	TagMax         = "max"
	TagStep        = "step"
	TagChoices     = "choices"
	TagColumns     = "columns"
	TagStyle       = "style"
	TagInitializer = "initializer"
	TagCallback    = "callback"
	TagPersistKey  = "persistKey"
	TagAttrs       = "attrs"
)

// FromField reads the parameter metadata declared on a struct field. The
// boolean result is false when the field carries no `param` tag, in which
// case the field is not a parameter. A `param:"-"` tag also opts out.
func FromField(f reflect.StructField) (Metadata, bool, error) {
	opts, ok := f.Tag.Lookup(TagParam)
	if !ok || opts == "-" {
		return Metadata{}, false, nil
	}

	meta := Default()
	if err := applyOptions(&meta, opts); err != nil {
		return Metadata{}, true, fmt.Errorf("field %s: %w", f.Name, err)
	}

	meta.Label = f.Tag.Get(TagLabel)
	meta.Description = f.Tag.Get(TagDescription)
	meta.Min = f.Tag.Get(TagMin)
	meta.Max = f.Tag.Get(TagMax)
	meta.StepSize = f.Tag.Get(TagStep)
	meta.Style = f.Tag.Get(TagStyle)
	meta.Initializer = f.Tag.Get(TagInitializer)
	meta.Callback = f.Tag.Get(TagCallback)
	meta.PersistKey = f.Tag.Get(TagPersistKey)
	meta.Choices = splitList(f.Tag.Get(TagChoices), ",")
	meta.Attrs = parseAttrs(f.Tag.Get(TagAttrs))

	if raw, ok := f.Tag.Lookup(TagColumns); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			return Metadata{}, true, fmt.Errorf("field %s: invalid columns %q: must be a non-negative integer", f.Name, raw)
		}
		meta.Columns = n
	}

	return meta, true, nil
}

func applyOptions(meta *Metadata, opts string) error {
	for _, opt := range splitList(opts, ",") {
		switch opt {
		case "input":
			meta.IO = Input
		case "output":
			meta.IO = Output
		case "both":
			meta.IO = Both
		case "normal":
			meta.Visibility = Normal
		case "invisible":
			meta.Visibility = Invisible
		case "message":
			meta.Visibility = Message
		case "required":
			meta.Required = true
		case "optional":
			meta.Required = false
		case "autofill":
			meta.AutoFill = true
		case "noautofill":
			meta.AutoFill = false
		case "persist":
			meta.Persist = true
		case "nopersist":
			meta.Persist = false
		default:
			return fmt.Errorf("unknown param option %q", opt)
		}
	}
	return nil
}

// splitList splits s on sep, trimming blanks and dropping empty elements.
// It returns nil for an empty list.
func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseAttrs parses "k=v;flag;k2=v2". A bare name has an empty value.
func parseAttrs(s string) Attrs {
	var attrs Attrs
	for _, part := range splitList(s, ";") {
		name, value, _ := strings.Cut(part, "=")
		attrs = append(attrs, Attr{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
	}
	return attrs
}
