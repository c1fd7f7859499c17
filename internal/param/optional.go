// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package param

import "reflect"

// Optional is implemented by parameter types whose value may legitimately be
// left unset. Items of such a type are never required, whatever their tags say.
type Optional interface {
	IsSet() bool
}

// Opt is a value that may be absent.
type Opt[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Valid: true}
}

// IsSet reports whether a value is present.
func (o Opt[T]) IsSet() bool { return o.Valid }

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.Value, o.Valid }

var optionalType = reflect.TypeFor[Optional]()

// IsOptional reports whether t, or a pointer to t, implements Optional.
func IsOptional(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Implements(optionalType) {
		return true
	}
	return t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(optionalType)
}

// Enumerated is implemented by types with a closed set of named values. For
// string-backed types the names are the values; for integer-backed types a
// name's index is its value.
type Enumerated interface {
	EnumValues() []string
}
