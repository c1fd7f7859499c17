// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package module

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/vk/modkit/internal/coerce"
	"github.com/vk/modkit/internal/param"
)

// Info describes one module type.
type Info struct {
	Name string
	// Type is the module's struct type.
	Type reflect.Type
	// Coercer converts metadata literals. Nil means coerce.Default.
	Coercer *coerce.Coercer

	overrides map[string]param.Override
}

// NewInfo creates the description of the module type typ. Overrides, keyed by
// Go field name, adjust the metadata declared in struct tags.
func NewInfo(name string, typ reflect.Type, overrides map[string]param.Override) (*Info, error) {
	if typ == nil {
		return nil, fmt.Errorf("module '%s' has no type", name)
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("module '%s': type %s is not a struct", name, typ)
	}
	return &Info{Name: name, Type: typ, overrides: overrides}, nil
}

func (m *Info) coercer() *coerce.Coercer {
	if m.Coercer != nil {
		return m.Coercer
	}
	return coerce.Default
}

type candidate struct {
	field reflect.StructField
	depth int
}

// Items returns the module's parameters in declaration order, with the fields
// of embedded structs listed in place. A field shadows any field of the same
// name declared deeper in the embedding tree.
//
// Items that could be built are returned even when err is non-nil; err joins
// one *FieldError per failing field.
func (m *Info) Items() ([]*Item, error) {
	var cands []candidate
	walk(m.Type, nil, 0, &cands)

	type level struct {
		name  string
		depth int
	}
	shallowest := make(map[string]int)
	count := make(map[level]int)
	for _, c := range cands {
		if d, ok := shallowest[c.field.Name]; !ok || c.depth < d {
			shallowest[c.field.Name] = c.depth
		}
		count[level{c.field.Name, c.depth}]++
	}

	var (
		items []*Item
		errs  []error
		seen  = make(map[string]bool)
	)
	for _, c := range cands {
		name := c.field.Name
		if c.depth != shallowest[name] || seen[name] {
			continue
		}
		seen[name] = true

		if count[level{name, c.depth}] > 1 {
			errs = append(errs, m.fieldError(name, errors.New("declared more than once at the same embedding depth")))
			continue
		}
		item, err := m.newItem(c.field)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		items = append(items, item)
	}

	for name := range m.overrides {
		if !seen[name] {
			errs = append(errs, m.fieldError(name, errors.New("override targets a field that is not a parameter")))
		}
	}

	return items, errors.Join(errs...)
}

// Item returns the parameter with the given Go field name.
func (m *Info) Item(name string) (*Item, error) {
	items, err := m.Items()
	if i := slices.IndexFunc(items, func(it *Item) bool { return it.Name() == name }); i >= 0 {
		return items[i], nil
	}
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("module '%s' has no parameter '%s'", m.Name, name)
}

// walk collects tagged fields, descending into embedded non-pointer structs
// that are not parameters themselves.
func walk(t reflect.Type, index []int, depth int, out *[]candidate) {
	for i := range t.NumField() {
		f := t.Field(i)
		f.Index = append(slices.Clone(index), i)

		if opts, tagged := f.Tag.Lookup(param.TagParam); tagged {
			if opts != "-" {
				*out = append(*out, candidate{field: f, depth: depth})
			}
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			walk(f.Type, f.Index, depth+1, out)
		}
	}
}

func (m *Info) fieldError(field string, err error) error {
	return &FieldError{Module: m.Name, Field: field, Err: err}
}
