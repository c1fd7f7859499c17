// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package module introspects the parameters of a module type.
//
// A module is a struct whose tagged fields are its inputs and outputs. Info
// wraps the struct type and enumerates those fields as Items; each Item
// resolves the field's concrete type (see package typeres) and coerces the
// literal bounds, step size and choices declared in its metadata to that type
// on demand.
//
// Failures are scoped to a single field. A module with one malformed
// parameter still reports every other parameter, and the error names the
// module and the offending field.
package module
