// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plugin

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Kinds of plugin known to the registry.
const (
	KindModule  = "module"
	KindCommand = "command"
	KindService = "service"
)

// Info is the registration record of a plugin type. The registry owns Info
// values; plugin instances only hold a weak reference to theirs.
type Info struct {
	// ID is the unique registry key, e.g. "blur.gauss".
	ID    string
	Title string
	// Type is the concrete struct type, never a pointer.
	Type     reflect.Type
	Priority float64
	Kind     string
	// MenuPath is a " > " separated location, e.g. "Process > Filters".
	MenuPath string
	IconPath string
}

// InfoFor builds a record for the plugin type P. P is usually the struct type
// embedding SortablePlugin.
func InfoFor[P any](id, title string) *Info {
	return &Info{ID: id, Title: title, Type: reflect.TypeFor[P](), Kind: KindModule}
}

var pluginType = reflect.TypeFor[Plugin]()

// Check reports whether the record describes an instantiable plugin type.
func (i *Info) Check() error {
	switch {
	case i.ID == "":
		return fmt.Errorf("plugin info has no id")
	case i.Type == nil:
		return fmt.Errorf("plugin '%s' has no type", i.ID)
	case i.Type.Kind() != reflect.Struct:
		return fmt.Errorf("plugin '%s': type %s must be a struct", i.ID, i.Type)
	case !reflect.PointerTo(i.Type).Implements(pluginType):
		return fmt.Errorf("plugin '%s': *%s does not implement plugin.Plugin; embed plugin.SortablePlugin", i.ID, i.Type)
	}
	return nil
}

// New creates a fresh instance of the plugin, with its priority and
// back-reference set from the record.
func (i *Info) New() (Plugin, error) {
	if err := i.Check(); err != nil {
		return nil, err
	}
	p := reflect.New(i.Type).Interface().(Plugin)
	p.SetPriority(i.Priority)
	p.SetInfo(i)
	return p, nil
}

// String returns the title, falling back to the id.
func (i *Info) String() string {
	if i.Title != "" {
		return i.Title
	}
	return i.ID
}

// CompareInfos orders records like Compare orders instances: higher priority
// first, then by type name, then by id.
func CompareInfos(a, b *Info) int {
	switch {
	case a == nil && b == nil:
		return 0
	case b == nil:
		return 1
	case a == nil:
		return -1
	}
	if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
		return c
	}
	if c := cmp.Compare(TypeName(a.Type), TypeName(b.Type)); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortInfos orders infos in place by CompareInfos.
func SortInfos(infos []*Info) {
	slices.SortStableFunc(infos, CompareInfos)
}
