// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package plugin defines the base behavior shared by every plugin: a numeric
// priority, a weak link back to the registration record, and the total order
// used to rank plugins of the same kind.
//
// Plugins embed SortablePlugin:
//
//	type Gauss struct {
//		plugin.SortablePlugin
//	}
//
// The registry creates instances through Info.New, which assigns the
// priority and the back-reference before the instance is handed out. Sorting
// never mutates its input elements, so a slice of registered plugins may be
// sorted by many goroutines as long as nobody changes a priority concurrently.
package plugin
