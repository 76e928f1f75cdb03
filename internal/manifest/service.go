// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"context"
	"log/slog"

	"crowbar-cli/pkg/fspath"
	"crowbar-cli/pkg/types"
)

// Service merges requirements into the project's manifest file on disk and
// triggers the installation step when anything was merged.
type Service struct {
	root      types.FilesystemPath
	installer *Installer
}

// NewService creates a manifest Service rooted at the project directory.
// A nil installer disables the post-merge installation step.
func NewService(root types.FilesystemPath, installer *Installer) *Service {
	return &Service{root: root, installer: installer}
}

// Merge loads the manifest, applies the requirements, warns about each
// overwritten key, saves the result, and runs the installer. Empty
// requirements are a no-op: the manifest is neither rewritten nor installed.
func (s *Service) Merge(ctx context.Context, req Requirements) error {
	if req.IsEmpty() {
		slog.Debug("no manifest requirements to merge")
		return nil
	}

	path := fspath.JoinStr(s.root, FileName)
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}

	merged, overwrites := Merge(doc, req)
	for _, ow := range overwrites {
		slog.Warn("overwriting manifest entry",
			"section", ow.Section, "key", ow.Key, "old", ow.Old, "new", ow.New)
	}

	if err := merged.Save(path); err != nil {
		return err
	}
	slog.Info("merged manifest requirements", "path", path,
		"dependencies", len(req.Dependencies),
		"devDependencies", len(req.DevDependencies),
		"scripts", len(req.Scripts))

	if s.installer == nil {
		return nil
	}
	return s.installer.Install(ctx, s.root)
}
