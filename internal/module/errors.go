// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package module

import "fmt"

// FieldError attributes a failure to one parameter of one module.
type FieldError struct {
	Module string
	Field  string
	Err    error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("module '%s', parameter '%s': %v", e.Module, e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FieldError) Unwrap() error {
	return e.Err
}
