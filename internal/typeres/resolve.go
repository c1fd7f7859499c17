// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package typeres resolves the runtime type of module parameter fields whose
// type is bound by the module rather than by the field declaration.
//
// Go generics are fully instantiated at compile time, so a field of a generic
// struct already has a concrete type and needs no resolution. What this
// package handles is the erased form: a field declared with an interface slot
// and tagged with a type variable, e.g.
//
//	type Ranged struct {
//		Value any   `param:"" typevar:"T"`
//		Marks []any `param:"" typevar:"T"`
//	}
//
// The owning module binds T by implementing ArgBinder, and base types may
// declare ordered upper bounds with BoundDeclarer. Declarations are collected
// from the owner and every struct it embeds, outermost first, so an outer
// binding overrides one made by an embedded type.
//
// When a variable has no explicit argument the first resolvable bound is used:
// declared bounds in order, then the slot's own interface. A bound is
// resolvable when it is not the empty interface. Picking the first bound is a
// compatibility policy and is ambiguous for variables with several bounds;
// bind such variables explicitly.
package typeres

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// TagVar is the struct tag key naming a field's type variable.
const TagVar = "typevar"

// ArgBinder is implemented by module types that bind type variables.
type ArgBinder interface {
	TypeArgs() map[string]reflect.Type
}

// BoundDeclarer is implemented by types that constrain their type variables.
type BoundDeclarer interface {
	TypeBounds() map[string][]reflect.Type
}

var (
	argBinderType     = reflect.TypeFor[ArgBinder]()
	boundDeclarerType = reflect.TypeFor[BoundDeclarer]()
)

// Resolve returns the erased runtime type of field as seen from owner. For a
// variable occupying the whole field this is the bound argument; for a
// variable nested in a container it is the declared container type.
func Resolve(field reflect.StructField, owner reflect.Type) (reflect.Type, error) {
	r, err := resolve(field, owner)
	if err != nil {
		return nil, err
	}
	if r.path == nil {
		return field.Type, nil
	}
	if len(r.path) == 0 {
		return r.arg, nil
	}
	return field.Type, nil
}

// ResolveGeneric returns the fully parameterized type of field as seen from
// owner, with the type variable substituted inside any container.
func ResolveGeneric(field reflect.StructField, owner reflect.Type) (reflect.Type, error) {
	r, err := resolve(field, owner)
	if err != nil {
		return nil, err
	}
	if r.path == nil {
		return field.Type, nil
	}
	return rebuild(field.Type, r.path, r.arg), nil
}

type resolution struct {
	// path holds the container kinds from the field type down to the slot.
	// It is nil when the field declares no type variable.
	path []reflect.Type
	arg  reflect.Type
}

func resolve(field reflect.StructField, owner reflect.Type) (resolution, error) {
	name, ok := field.Tag.Lookup(TagVar)
	if !ok {
		return resolution{}, nil
	}
	name = strings.TrimSpace(name)
	fail := func(format string, args ...any) (resolution, error) {
		return resolution{}, &TypeResolutionError{
			Owner:  owner,
			Field:  field.Name,
			Var:    name,
			Reason: fmt.Sprintf(format, args...),
		}
	}
	if name == "" {
		return fail("empty %s tag", TagVar)
	}

	path, slot, ok := findSlot(field.Type)
	if !ok {
		return fail("declared type %s has no interface slot for a type variable", field.Type)
	}

	decl := collect(owner)
	bounds := decl.bounds[name]

	if arg, ok := decl.args[name]; ok {
		if arg == nil {
			return fail("bound to a nil type")
		}
		if !arg.Implements(slot) {
			return fail("argument %s does not implement %s", arg, slot)
		}
		for _, b := range bounds {
			if b != nil && b.Kind() == reflect.Interface && !arg.Implements(b) {
				return fail("argument %s does not satisfy bound %s", arg, b)
			}
		}
		return resolution{path: path, arg: arg}, nil
	}

	for _, b := range append(slices.Clone(bounds), slot) {
		if resolvable(b) && b.Implements(slot) {
			return resolution{path: path, arg: b}, nil
		}
	}
	return fail("no argument bound and no resolvable upper bound")
}

func resolvable(t reflect.Type) bool {
	return t != nil && !(t.Kind() == reflect.Interface && t.NumMethod() == 0)
}

// findSlot walks element types until it reaches an interface type.
func findSlot(t reflect.Type) ([]reflect.Type, reflect.Type, bool) {
	path := []reflect.Type{}
	for {
		switch t.Kind() {
		case reflect.Interface:
			return path, t, true
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
			path = append(path, t)
			t = t.Elem()
		default:
			return nil, nil, false
		}
	}
}

// rebuild substitutes arg for the slot at the end of path.
func rebuild(declared reflect.Type, path []reflect.Type, arg reflect.Type) reflect.Type {
	if len(path) == 0 {
		return arg
	}
	inner := rebuild(declared.Elem(), path[1:], arg)
	switch declared.Kind() {
	case reflect.Pointer:
		return reflect.PointerTo(inner)
	case reflect.Slice:
		return reflect.SliceOf(inner)
	case reflect.Array:
		return reflect.ArrayOf(declared.Len(), inner)
	case reflect.Map:
		return reflect.MapOf(declared.Key(), inner)
	case reflect.Chan:
		return reflect.ChanOf(declared.ChanDir(), inner)
	}
	panic("typeres: unexpected container kind " + declared.Kind().String())
}

type declarations struct {
	args   map[string]reflect.Type
	bounds map[string][]reflect.Type
}

// collect gathers bindings and bounds from owner and its embedded structs,
// breadth first so that shallower declarations win.
func collect(owner reflect.Type) declarations {
	decl := declarations{
		args:   map[string]reflect.Type{},
		bounds: map[string][]reflect.Type{},
	}
	if owner == nil {
		return decl
	}

	seen := map[reflect.Type]bool{}
	level := []reflect.Type{owner}
	for len(level) > 0 {
		var next []reflect.Type
		for _, t := range level {
			if t.Kind() == reflect.Pointer {
				t = t.Elem()
			}
			if seen[t] {
				continue
			}
			seen[t] = true

			if v, ok := instance(t, argBinderType); ok {
				for name, arg := range call(v.(ArgBinder).TypeArgs) {
					if _, done := decl.args[name]; !done {
						decl.args[name] = arg
					}
				}
			}
			if v, ok := instance(t, boundDeclarerType); ok {
				for name, bounds := range call(v.(BoundDeclarer).TypeBounds) {
					if _, done := decl.bounds[name]; !done {
						decl.bounds[name] = bounds
					}
				}
			}

			if t.Kind() != reflect.Struct {
				continue
			}
			for i := range t.NumField() {
				if f := t.Field(i); f.Anonymous {
					next = append(next, f.Type)
				}
			}
		}
		level = next
	}
	return decl
}

// instance returns a zero value of t (or of *t) that implements iface.
func instance(t, iface reflect.Type) (any, bool) {
	if t.Implements(iface) {
		return reflect.Zero(t).Interface(), true
	}
	if reflect.PointerTo(t).Implements(iface) {
		return reflect.New(t).Interface(), true
	}
	return nil, false
}

// call invokes a declaration method on a zero value. A method promoted through
// a nil embedded pointer panics; such a declaration is picked up again when
// the embedded type itself is visited.
func call[M any](fn func() M) (m M) {
	defer func() {
		if recover() != nil {
			var zero M
			m = zero
		}
	}()
	return fn()
}
