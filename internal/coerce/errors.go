// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package coerce

import (
	"fmt"
	"reflect"
)

// CoercionError reports a literal that could not be converted to its target
// type, either because it is malformed or because the type is unsupported.
type CoercionError struct {
	Literal string
	Target  reflect.Type
	Err     error
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	target := "<nil>"
	if e.Target != nil {
		target = e.Target.String()
	}
	return fmt.Sprintf("cannot coerce %q to %s: %v", e.Literal, target, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CoercionError) Unwrap() error {
	return e.Err
}
