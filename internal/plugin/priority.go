// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plugin

// Well-known priorities. Higher values sort first.
const (
	First         = 1e300
	ExtremelyHigh = 1e6
	VeryHigh      = 1e4
	High          = 100
	Normal        = 0
	Low           = -100
	VeryLow       = -1e4
	ExtremelyLow  = -1e6
	Last          = -1e300
)

var priorityNames = []struct {
	name  string
	value float64
}{
	{"first", First},
	{"extremely-high", ExtremelyHigh},
	{"very-high", VeryHigh},
	{"high", High},
	{"normal", Normal},
	{"low", Low},
	{"very-low", VeryLow},
	{"extremely-low", ExtremelyLow},
	{"last", Last},
}

// PriorityName returns the name of a well-known priority, or "" when p is not
// one of the constants.
func PriorityName(p float64) string {
	for _, n := range priorityNames {
		if n.value == p {
			return n.name
		}
	}
	return ""
}

// ParsePriority accepts a well-known priority name.
func ParsePriority(s string) (float64, bool) {
	for _, n := range priorityNames {
		if n.name == s {
			return n.value, true
		}
	}
	return 0, false
}
