// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package param

import (
	"fmt"
	"strings"
)

// IO is the direction in which a module item flows.
type IO int

const (
	Input IO = iota
	Output
	Both
)

// String returns the lower-case name used in tags and manifests.
func (d IO) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("io(%d)", int(d))
	}
}

// ParseIO parses an IO name, ignoring case.
func ParseIO(s string) (IO, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	case "both":
		return Both, nil
	}
	return Input, fmt.Errorf("unknown io type %q: must be 'input', 'output' or 'both'", s)
}

// Visibility controls how an item is presented to the user.
type Visibility int

const (
	// Normal items are shown and editable.
	Normal Visibility = iota
	// Invisible items are never shown.
	Invisible
	// Message items are shown as read-only text.
	Message
)

func (v Visibility) String() string {
	switch v {
	case Normal:
		return "normal"
	case Invisible:
		return "invisible"
	case Message:
		return "message"
	default:
		return fmt.Sprintf("visibility(%d)", int(v))
	}
}

// ParseVisibility parses a visibility name, ignoring case.
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return Normal, nil
	case "invisible":
		return Invisible, nil
	case "message":
		return Message, nil
	}
	return Normal, fmt.Errorf("unknown visibility %q: must be 'normal', 'invisible' or 'message'", s)
}
