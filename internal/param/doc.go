// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package param defines the declarative metadata attached to a module's
// parameter fields.
//
// Metadata is normally read from struct tags on the module type:
//
//	type Blur struct {
//		plugin.SortablePlugin
//
//		Radius float64 `param:"input,required" label:"Radius" min:"0" max:"50" step:"0.5"`
//		Mode   string  `param:"" choices:"gauss,box" style:"radio"`
//		Result []byte  `param:"output"`
//	}
//
// The `param` key marks a field as a parameter and carries comma separated
// options (direction, visibility and boolean flags). Every other attribute has
// its own tag key so that values may contain commas or spaces without quoting.
// Bounds, step sizes and choices are kept as literal strings here; they are
// coerced to the field's resolved type by the module package.
//
// HCL manifests can adjust the same attributes after the fact through an
// Override, which Metadata.Overlay applies on top of the tag values.
package param
