// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package typeres

import (
	"fmt"
	"reflect"
)

// TypeResolutionError reports a type variable that could not be bound to a
// concrete type.
type TypeResolutionError struct {
	Owner  reflect.Type
	Field  string
	Var    string
	Reason string
}

// Error implements the error interface.
func (e *TypeResolutionError) Error() string {
	owner := "<nil>"
	if e.Owner != nil {
		owner = e.Owner.String()
	}
	return fmt.Sprintf("cannot resolve type variable %q of field %s in %s: %s", e.Var, e.Field, owner, e.Reason)
}
