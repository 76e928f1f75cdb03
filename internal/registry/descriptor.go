// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"context"

	"crowbar-cli/internal/manifest"
	"crowbar-cli/pkg/types"
)

type (
	// MergeManifestFunc merges a command's manifest requirements into the
	// host project's package manifest.
	MergeManifestFunc func(ctx context.Context, req manifest.Requirements) error

	// RelocateFilesFunc copies a command's backing files into the host
	// project tree. The destination root is bound by the caller.
	RelocateFilesFunc func(ctx context.Context, files []types.FilesystemPath) error

	// EjectTools are the handles an eject capability receives. The
	// capability decides which files to relocate and which manifest entries
	// to merge; the framework provides the mechanism.
	EjectTools struct {
		MergeManifest MergeManifestFunc
		RelocateFiles RelocateFilesFunc
	}

	// EjectFunc is the optional eject capability of a command: it detaches
	// the command from the framework into the host project.
	EjectFunc func(ctx context.Context, tools EjectTools) error

	// Descriptor is one registry entry for a pluggable command. A nil Eject
	// means the command cannot be ejected.
	Descriptor struct {
		Group       types.CommandGroup
		Name        types.CommandName
		Description string
		Eject       EjectFunc
	}
)

// Identity returns the command's identity key, "group/name".
func (d Descriptor) Identity() string {
	return string(d.Group) + "/" + string(d.Name)
}

// Ejectable reports whether the command exposes an eject capability.
func (d Descriptor) Ejectable() bool { return d.Eject != nil }
