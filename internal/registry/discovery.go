// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"crowbar-cli/internal/manifest"
	"crowbar-cli/pkg/fspath"
	"crowbar-cli/pkg/types"

	"github.com/pelletier/go-toml/v2"
)

// DescriptorFileName is the per-plugin descriptor file parsed during discovery.
const DescriptorFileName = "plugin.toml"

type (
	// Discovery enumerates the commands known to the framework: plugin
	// commands found under the plugins root plus the built-in commands.
	Discovery struct {
		root types.FilesystemPath
	}

	// Result bundles the enumerated descriptors with discovery diagnostics.
	Result struct {
		Commands    []Descriptor
		Diagnostics []Diagnostic
	}

	// descriptorFile is the on-disk shape of a plugin.toml.
	descriptorFile struct {
		Group       string     `toml:"group"`
		Name        string     `toml:"name"`
		Description string     `toml:"description"`
		Eject       *ejectSpec `toml:"eject"`
	}

	// ejectSpec declares what an ejecting plugin contributes to the host
	// project: source files (relative to the plugin directory, slash
	// separated) and manifest requirements.
	ejectSpec struct {
		Files    []string              `toml:"files"`
		Manifest manifest.Requirements `toml:"manifest"`
	}
)

// New creates a Discovery over the given plugins root.
func New(root types.FilesystemPath) *Discovery {
	return &Discovery{root: root}
}

// Commands enumerates all registered commands in directory order, built-ins
// last. A missing plugins root is not an error: the built-ins still exist.
// Malformed plugin descriptors become diagnostics and are skipped.
func (d *Discovery) Commands(_ context.Context) (Result, error) {
	entries, err := os.ReadDir(string(d.root))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Commands: builtinDescriptors()}, nil
		}
		return Result{}, fmt.Errorf("reading plugins root %s: %w", d.root, err)
	}

	var result Result
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		pluginDir := fspath.JoinStr(d.root, entry.Name())
		descPath := fspath.JoinStr(pluginDir, DescriptorFileName)

		data, err := os.ReadFile(string(descPath))
		if errors.Is(err, fs.ErrNotExist) {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeDescriptorMissing,
				Message:  fmt.Sprintf("plugin directory %s has no %s, skipping", entry.Name(), DescriptorFileName),
				Path:     string(pluginDir),
			})
			continue
		}
		if err != nil {
			return Result{}, fmt.Errorf("reading descriptor %s: %w", descPath, err)
		}

		var df descriptorFile
		if err := toml.Unmarshal(data, &df); err != nil {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeDescriptorParseFailed,
				Message:  fmt.Sprintf("cannot parse %s: %v", descPath, err),
				Path:     string(descPath),
				Cause:    err,
			})
			continue
		}

		group := types.CommandGroup(df.Group)
		name := types.CommandName(df.Name)
		if ok, errs := group.IsValid(); !ok {
			result.Diagnostics = append(result.Diagnostics, invalidDescriptorDiagnostic(descPath, errs))
			continue
		}
		if ok, errs := name.IsValid(); !ok {
			result.Diagnostics = append(result.Diagnostics, invalidDescriptorDiagnostic(descPath, errs))
			continue
		}

		desc := Descriptor{Group: group, Name: name, Description: df.Description}
		if df.Eject != nil {
			desc.Eject = ejectFuncFor(pluginDir, *df.Eject)
		}
		result.Commands = append(result.Commands, desc)
	}

	result.Commands = append(result.Commands, builtinDescriptors()...)
	return result, nil
}

// ejectFuncFor builds the eject capability for a plugin: relocate its
// backing files, merge its manifest requirements, then remove the plugin
// directory so future enumerations no longer register the command.
func ejectFuncFor(pluginDir types.FilesystemPath, spec ejectSpec) EjectFunc {
	return func(ctx context.Context, tools EjectTools) error {
		if len(spec.Files) > 0 {
			files := make([]types.FilesystemPath, len(spec.Files))
			for i, f := range spec.Files {
				files[i] = fspath.JoinStr(pluginDir, filepath.FromSlash(f))
			}
			if err := tools.RelocateFiles(ctx, files); err != nil {
				return err
			}
		}

		if err := tools.MergeManifest(ctx, spec.Manifest); err != nil {
			return err
		}

		if err := os.RemoveAll(string(pluginDir)); err != nil {
			return fmt.Errorf("deregistering plugin %s: %w", pluginDir, err)
		}
		slog.Info("plugin deregistered", "plugin", pluginDir)
		return nil
	}
}

func invalidDescriptorDiagnostic(descPath types.FilesystemPath, errs []error) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Code:     CodeDescriptorInvalid,
		Message:  fmt.Sprintf("invalid descriptor %s: %v", descPath, errors.Join(errs...)),
		Path:     string(descPath),
		Cause:    errors.Join(errs...),
	}
}

// builtinDescriptors returns the registry entries for crowbar's built-in
// commands. They carry the reserved identities and no eject capability.
func builtinDescriptors() []Descriptor {
	return []Descriptor{
		{Group: "eject", Description: "Copy pluggable commands into the host project"},
		{Group: "version", Description: "Print the crowbar version"},
	}
}
