// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package script

import (
	"slices"
	"strings"
)

// MenuSeparator joins menu entries in the string form of a MenuPath.
const MenuSeparator = " > "

// MenuEntry is one level of a menu path.
type MenuEntry struct {
	Name     string
	IconPath string
}

// MenuPath is a location in the menu hierarchy, outermost entry first.
type MenuPath []MenuEntry

// ParseMenuPath splits "File > Import > CSV" into its entries. Blank entries
// are dropped.
func ParseMenuPath(s string) MenuPath {
	var p MenuPath
	for _, name := range strings.Split(s, ">") {
		if name = strings.TrimSpace(name); name != "" {
			p = append(p, MenuEntry{Name: name})
		}
	}
	return p
}

// Append returns a copy of p extended by an entry with the given name. The
// receiver is never modified.
func (p MenuPath) Append(name string) MenuPath {
	out := make(MenuPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, MenuEntry{Name: name})
}

// Leaf returns the innermost entry, or nil for an empty path.
func (p MenuPath) Leaf() *MenuEntry {
	if len(p) == 0 {
		return nil
	}
	return &p[len(p)-1]
}

// Names returns the entry names in order.
func (p MenuPath) Names() []string {
	names := make([]string, len(p))
	for i, e := range p {
		names[i] = e.Name
	}
	return names
}

// Equal reports whether both paths name the same entries.
func (p MenuPath) Equal(o MenuPath) bool {
	return slices.Equal(p.Names(), o.Names())
}

func (p MenuPath) String() string {
	return strings.Join(p.Names(), MenuSeparator)
}
