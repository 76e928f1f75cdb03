// SPDX-License-Identifier: MPL-2.0

package relocate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"crowbar-cli/pkg/types"
)

// ErrDestinationExists is the sentinel error wrapped by DestinationExistsError.
var ErrDestinationExists = errors.New("destination already exists")

type (
	// Relocator copies batches of files under a destination root, recreating
	// the directory structure below their common ancestor.
	Relocator struct{}

	// DestinationExistsError is returned when a computed destination path
	// already exists. The whole batch fails before any filesystem mutation.
	DestinationExistsError struct {
		Path types.FilesystemPath
	}
)

// Error implements the error interface for DestinationExistsError.
func (e *DestinationExistsError) Error() string {
	return fmt.Sprintf("destination already exists: %s", e.Path)
}

// Unwrap returns ErrDestinationExists for errors.Is() compatibility.
func (e *DestinationExistsError) Unwrap() error { return ErrDestinationExists }

// NewRelocator creates a Relocator.
func NewRelocator() *Relocator {
	return &Relocator{}
}

// Relocate copies every file into destRoot, preserving each file's path
// relative to the batch's common ancestor directory.
//
// The operation validates the entire batch before touching the filesystem:
// if any destination path already exists, it fails with a
// DestinationExistsError and nothing is created or copied. Directory
// creation is idempotent; file copies preserve content and permission bits.
func (r *Relocator) Relocate(ctx context.Context, files []types.FilesystemPath, destRoot types.FilesystemPath) error {
	if len(files) == 0 {
		return ErrEmptyFileSet
	}

	resolved, err := resolveAll(files)
	if err != nil {
		return err
	}

	// Computed once and reused for every destination in this batch.
	ancestor := commonAncestorOf(resolved)

	// Duplicate inputs resolve to the same source and therefore the same
	// destination; collapse them so the second copy cannot trip O_EXCL
	// after part of the batch was already written.
	resolved = dedupe(resolved)

	destinations := make([]string, len(resolved))
	seenDirs := make(map[string]struct{})
	var dirs []string
	for i, src := range resolved {
		rel := strings.TrimPrefix(src, ancestor)
		dest := filepath.Join(string(destRoot), rel)
		destinations[i] = dest

		dir := filepath.Dir(dest)
		if _, ok := seenDirs[dir]; !ok {
			seenDirs[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	// Pre-flight across the entire batch: any collision aborts before the
	// first mkdir or copy.
	for _, dest := range destinations {
		if _, err := os.Lstat(dest); err == nil {
			return &DestinationExistsError{Path: types.FilesystemPath(dest)}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking destination %s: %w", dest, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
		slog.Info("created directory", "path", dir)
	}

	for i, src := range resolved {
		if err := copyFile(src, destinations[i]); err != nil {
			return err
		}
		slog.Info("copied file", "source", src, "destination", destinations[i])
	}

	return nil
}

// dedupe drops repeated paths, keeping the first occurrence's position.
func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0:0]
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// copyFile copies src to dest, carrying over the source's permission bits.
// O_EXCL guards against a file appearing at dest between pre-flight and copy.
func copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading source %s: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating destination %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dest, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing destination %s: %w", dest, err)
	}
	return nil
}
