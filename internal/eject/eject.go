// SPDX-License-Identifier: MPL-2.0

// Package eject sequences the ejection of pluggable commands: a destructive
// action confirmation, command selection, and per-command dispatch of the
// eject capability.
//
// The run is a straight-line state machine: AwaitingConfirmation → Selecting
// → Dispatching → Done/Aborted/Failed. Every step is awaited to completion
// before the next begins; there is no rollback once dispatching has started.
package eject

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"crowbar-cli/internal/manifest"
	"crowbar-cli/internal/registry"
	"crowbar-cli/pkg/types"
)

var (
	// ErrUserAborted is returned when the confirmation prompt is declined.
	ErrUserAborted = errors.New("ejection aborted by user")
	// ErrNothingToDo is returned when an unfiltered (or partially filtered)
	// run finds no ejectable, non-reserved commands.
	ErrNothingToDo = errors.New("no ejectable commands found")
	// ErrCommandNotFound is the sentinel error wrapped by CommandNotFoundError.
	ErrCommandNotFound = errors.New("command not found")
	// ErrCapabilityMissing is the sentinel error wrapped by CapabilityMissingError.
	ErrCapabilityMissing = errors.New("command has no eject capability")
)

type (
	// CommandNotFoundError is returned when explicit group+command criteria
	// match no registered command.
	CommandNotFoundError struct {
		Group   string
		Command string
	}

	// CapabilityMissingError is returned when a single targeted command
	// lacks an eject capability.
	CapabilityMissingError struct {
		Identity string
	}

	// ConfirmFunc obtains the user's yes/no decision for the destructive
	// batch operation.
	ConfirmFunc func(ctx context.Context) (bool, error)

	// EnumerateFunc returns the full set of commands known to the framework.
	EnumerateFunc func(ctx context.Context) ([]registry.Descriptor, error)

	// Merger merges manifest requirements into the host project.
	Merger interface {
		Merge(ctx context.Context, req manifest.Requirements) error
	}

	// Relocator copies files into a destination root, preserving structure
	// below their common ancestor.
	Relocator interface {
		Relocate(ctx context.Context, files []types.FilesystemPath, destRoot types.FilesystemPath) error
	}

	// Dependencies defines the injection points for building an Orchestrator.
	// All fields are required; tests supply fakes to isolate dispatch logic.
	Dependencies struct {
		Confirm   ConfirmFunc
		Enumerate EnumerateFunc
		Merger    Merger
		Relocator Relocator
		// DestRoot is the host project root files are relocated into.
		DestRoot types.FilesystemPath
	}

	// Orchestrator runs the eject operation end to end.
	Orchestrator struct {
		deps Dependencies
	}
)

// Error implements the error interface for CommandNotFoundError.
func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("no command registered for group %q and command %q", e.Group, e.Command)
}

// Unwrap returns ErrCommandNotFound for errors.Is() compatibility.
func (e *CommandNotFoundError) Unwrap() error { return ErrCommandNotFound }

// Error implements the error interface for CapabilityMissingError.
func (e *CapabilityMissingError) Error() string {
	return fmt.Sprintf("command %q has no eject capability", e.Identity)
}

// Unwrap returns ErrCapabilityMissing for errors.Is() compatibility.
func (e *CapabilityMissingError) Unwrap() error { return ErrCapabilityMissing }

// New creates an Orchestrator, validating that every dependency is supplied.
func New(deps Dependencies) (*Orchestrator, error) {
	switch {
	case deps.Confirm == nil:
		return nil, errors.New("eject: Confirm dependency is required")
	case deps.Enumerate == nil:
		return nil, errors.New("eject: Enumerate dependency is required")
	case deps.Merger == nil:
		return nil, errors.New("eject: Merger dependency is required")
	case deps.Relocator == nil:
		return nil, errors.New("eject: Relocator dependency is required")
	case deps.DestRoot == "":
		return nil, errors.New("eject: DestRoot dependency is required")
	}
	return &Orchestrator{deps: deps}, nil
}

// Run executes the eject operation for the given criteria.
//
// The confirmation gate runs before any other work; declining leaves the
// system untouched. An empty selection maps to CommandNotFoundError when
// both criteria were specified and ErrNothingToDo otherwise. During
// dispatch, a command without the capability is fatal only when it was the
// single explicit target; broad runs log a warning and continue.
func (o *Orchestrator) Run(ctx context.Context, criteria registry.Criteria) error {
	confirmed, err := o.deps.Confirm(ctx)
	if err != nil {
		return fmt.Errorf("confirming ejection: %w", err)
	}
	if !confirmed {
		return ErrUserAborted
	}

	all, err := o.deps.Enumerate(ctx)
	if err != nil {
		return fmt.Errorf("enumerating commands: %w", err)
	}

	selected := registry.Select(all, criteria)
	if len(selected) == 0 {
		if criteria.IsSingleTarget() {
			return &CommandNotFoundError{Group: criteria.Group, Command: criteria.Command}
		}
		return ErrNothingToDo
	}

	tools := registry.EjectTools{
		MergeManifest: o.deps.Merger.Merge,
		RelocateFiles: func(ctx context.Context, files []types.FilesystemPath) error {
			return o.deps.Relocator.Relocate(ctx, files, o.deps.DestRoot)
		},
	}

	for _, desc := range selected {
		if !desc.Ejectable() {
			if criteria.IsSingleTarget() {
				return &CapabilityMissingError{Identity: desc.Identity()}
			}
			slog.Warn("command has no eject capability, skipping", "command", desc.Identity())
			continue
		}

		slog.Info("ejecting command", "command", desc.Identity())
		if err := desc.Eject(ctx, tools); err != nil {
			return fmt.Errorf("ejecting %s: %w", desc.Identity(), err)
		}
	}

	return nil
}
