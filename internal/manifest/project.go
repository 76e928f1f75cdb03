// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"os"

	"crowbar-cli/pkg/fspath"
	"crowbar-cli/pkg/types"
)

// ErrProjectRootNotFound is the sentinel error wrapped by ProjectRootNotFoundError.
var ErrProjectRootNotFound = errors.New("project root not found")

// ProjectRootNotFoundError is returned when no ancestor of the start
// directory contains a package manifest.
type ProjectRootNotFoundError struct {
	Start types.FilesystemPath
}

// Error implements the error interface.
func (e *ProjectRootNotFoundError) Error() string {
	return fmt.Sprintf("no %s found in %s or any parent directory", FileName, e.Start)
}

// Unwrap returns ErrProjectRootNotFound for errors.Is() compatibility.
func (e *ProjectRootNotFoundError) Unwrap() error { return ErrProjectRootNotFound }

// FindProjectRoot walks up from start to the nearest directory containing a
// package manifest and returns that directory.
func FindProjectRoot(start types.FilesystemPath) (types.FilesystemPath, error) {
	dir, err := fspath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		candidate := fspath.JoinStr(dir, FileName)
		if info, err := os.Stat(string(candidate)); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := fspath.Dir(dir)
		if parent == dir {
			return "", &ProjectRootNotFoundError{Start: start}
		}
		dir = parent
	}
}
