// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCommandGroup is the sentinel error wrapped by InvalidCommandGroupError.
	ErrInvalidCommandGroup = errors.New("invalid command group")
	// ErrInvalidCommandName is the sentinel error wrapped by InvalidCommandNameError.
	ErrInvalidCommandName = errors.New("invalid command name")
)

type (
	// CommandGroup is the namespace a pluggable command belongs to (e.g. "git").
	// A valid group is non-empty, not whitespace-only, and contains no "/",
	// since "/" is the separator in the group/name identity key.
	CommandGroup string

	// InvalidCommandGroupError is returned when a CommandGroup value is empty,
	// whitespace-only, or contains a "/".
	InvalidCommandGroupError struct {
		Value CommandGroup
	}

	// CommandName is the name of a pluggable command within its group.
	// The zero value ("") is valid and denotes a group-level command (the
	// built-in commands use it); non-zero values must not contain "/".
	CommandName string

	// InvalidCommandNameError is returned when a CommandName value contains
	// a "/" or is whitespace-only while non-empty.
	InvalidCommandNameError struct {
		Value CommandName
	}
)

// String returns the string representation of the CommandGroup.
func (g CommandGroup) String() string { return string(g) }

// IsValid returns whether the CommandGroup is valid.
func (g CommandGroup) IsValid() (bool, []error) {
	if strings.TrimSpace(string(g)) == "" || strings.Contains(string(g), "/") {
		return false, []error{&InvalidCommandGroupError{Value: g}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCommandGroupError.
func (e *InvalidCommandGroupError) Error() string {
	return fmt.Sprintf("invalid command group %q: must be non-empty and must not contain %q", e.Value, "/")
}

// Unwrap returns ErrInvalidCommandGroup for errors.Is() compatibility.
func (e *InvalidCommandGroupError) Unwrap() error { return ErrInvalidCommandGroup }

// String returns the string representation of the CommandName.
func (n CommandName) String() string { return string(n) }

// IsValid returns whether the CommandName is valid. The empty name is valid
// (group-level commands); anything else must be non-whitespace and "/"-free.
func (n CommandName) IsValid() (bool, []error) {
	if n == "" {
		return true, nil
	}
	if strings.TrimSpace(string(n)) == "" || strings.Contains(string(n), "/") {
		return false, []error{&InvalidCommandNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCommandNameError.
func (e *InvalidCommandNameError) Error() string {
	return fmt.Sprintf("invalid command name %q: must not be whitespace-only and must not contain %q", e.Value, "/")
}

// Unwrap returns ErrInvalidCommandName for errors.Is() compatibility.
func (e *InvalidCommandNameError) Unwrap() error { return ErrInvalidCommandName }
