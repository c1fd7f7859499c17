// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package param

import "slices"

// DefaultColumns is the column count used when none is declared.
const DefaultColumns = 6

// Attr is a single free-form key/value attribute of a parameter.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list. Names may repeat; lookups return the
// first match.
type Attrs []Attr

// Is reports whether an attribute with the given name is present.
func (a Attrs) Is(key string) bool {
	for _, attr := range a {
		if attr.Name == key {
			return true
		}
	}
	return false
}

// Get returns the value of the first attribute with the given name.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Name == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Metadata is the complete declarative description of one parameter field.
// Min, Max, StepSize and Choices hold literals; an empty literal means the
// constraint is not specified.
type Metadata struct {
	IO          IO
	Visibility  Visibility
	Required    bool
	AutoFill    bool
	Persist     bool
	PersistKey  string
	Initializer string
	Callback    string
	Style       string
	Min         string
	Max         string
	StepSize    string
	Choices     []string
	Columns     int
	Label       string
	Description string
	Attrs       Attrs
}

// Default returns the metadata of a field tagged with an empty `param:""`.
func Default() Metadata {
	return Metadata{
		IO:         Input,
		Visibility: Normal,
		Required:   true,
		AutoFill:   true,
		Persist:    true,
		Columns:    DefaultColumns,
	}
}

// Override carries manifest-provided adjustments. Nil fields leave the
// corresponding metadata untouched.
type Override struct {
	IO          *IO
	Visibility  *Visibility
	Required    *bool
	AutoFill    *bool
	Persist     *bool
	PersistKey  *string
	Initializer *string
	Callback    *string
	Style       *string
	Min         *string
	Max         *string
	StepSize    *string
	Choices     []string
	Columns     *int
	Label       *string
	Description *string
	Attrs       Attrs
}

// Overlay returns a copy of m with o applied. Override attributes are placed
// ahead of the existing ones so they take precedence in lookups.
func (m Metadata) Overlay(o Override) Metadata {
	out := m.clone()
	setIf(&out.IO, o.IO)
	setIf(&out.Visibility, o.Visibility)
	setIf(&out.Required, o.Required)
	setIf(&out.AutoFill, o.AutoFill)
	setIf(&out.Persist, o.Persist)
	setIf(&out.PersistKey, o.PersistKey)
	setIf(&out.Initializer, o.Initializer)
	setIf(&out.Callback, o.Callback)
	setIf(&out.Style, o.Style)
	setIf(&out.Min, o.Min)
	setIf(&out.Max, o.Max)
	setIf(&out.StepSize, o.StepSize)
	setIf(&out.Columns, o.Columns)
	setIf(&out.Label, o.Label)
	setIf(&out.Description, o.Description)
	if o.Choices != nil {
		out.Choices = slices.Clone(o.Choices)
	}
	if len(o.Attrs) > 0 {
		out.Attrs = append(slices.Clone(o.Attrs), out.Attrs...)
	}
	return out
}

func (m Metadata) clone() Metadata {
	m.Choices = slices.Clone(m.Choices)
	m.Attrs = slices.Clone(m.Attrs)
	return m
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
