// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plugin

import (
	"cmp"
	"reflect"
	"slices"
	"weak"
)

// Prioritized is anything that can be ranked by priority.
type Prioritized interface {
	Priority() float64
	SetPriority(p float64)
}

// HasInfo is implemented by plugins that know their registration record.
type HasInfo interface {
	Info() *Info
	SetInfo(info *Info)
}

// Plugin is the capability set every registered plugin provides.
type Plugin interface {
	Prioritized
	HasInfo
}

// SortablePlugin is embedded by concrete plugins. Its zero value has Normal
// priority and no registration record.
type SortablePlugin struct {
	priority float64
	info     weak.Pointer[Info]
}

// Priority returns the plugin's priority.
func (p *SortablePlugin) Priority() float64 { return p.priority }

// SetPriority changes the plugin's priority.
func (p *SortablePlugin) SetPriority(v float64) { p.priority = v }

// Info returns the registration record, or nil before registration or once
// the registry has released it.
func (p *SortablePlugin) Info() *Info { return p.info.Value() }

// SetInfo links the plugin to its registration record without keeping the
// record alive.
func (p *SortablePlugin) SetInfo(info *Info) { p.info = weak.Make(info) }

// Compare orders a before b when a has the higher priority. Equal priorities
// are broken by the qualified type name from TypeName. Distinct types share a
// name only when they are declared locally in different functions of one
// package; such types compare equal, and the registry refuses to register
// both. Compare(p, nil) is positive for every p and Compare(nil, p) is
// negative, so absent entries collect at the front of an ascending sort. Two
// absent operands compare equal.
func Compare(a, b Prioritized) int {
	aNil, bNil := isNil(a), isNil(b)
	switch {
	case aNil && bNil:
		return 0
	case bNil:
		return 1
	case aNil:
		return -1
	}
	if c := cmp.Compare(b.Priority(), a.Priority()); c != 0 {
		return c
	}
	return cmp.Compare(TypeName(reflect.TypeOf(a)), TypeName(reflect.TypeOf(b)))
}

// Sort orders ps in place by Compare. The sort is stable.
func Sort[P Prioritized](ps []P) {
	slices.SortStableFunc(ps, func(a, b P) int { return Compare(a, b) })
}

// Title returns the display title of p: the registered title when there is
// one, otherwise the fully qualified type name.
func Title(p any) string {
	if h, ok := p.(HasInfo); ok && !isNil(h) {
		if info := h.Info(); info != nil && info.Title != "" {
			return info.Title
		}
	}
	return TypeName(reflect.TypeOf(p))
}

// TypeName returns "pkgpath.Name" for t with pointers stripped. Unnamed types
// fall back to their string form.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
