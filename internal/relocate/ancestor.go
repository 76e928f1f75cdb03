// SPDX-License-Identifier: MPL-2.0

package relocate

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"crowbar-cli/pkg/types"
)

// ErrEmptyFileSet is returned when an operation receives no files to work on.
var ErrEmptyFileSet = errors.New("empty file set")

// CommonAncestor computes the longest directory prefix shared by every file
// in the given set. The result always ends in a path separator, except for
// the degenerate empty prefix (possible on Windows when the inputs span
// volumes). A single input file yields its own parent directory.
//
// The input slice is never mutated. An empty input is a precondition
// violation and returns ErrEmptyFileSet.
func CommonAncestor(files []types.FilesystemPath) (types.FilesystemPath, error) {
	if len(files) == 0 {
		return "", ErrEmptyFileSet
	}

	resolved, err := resolveAll(files)
	if err != nil {
		return "", err
	}

	return types.FilesystemPath(commonAncestorOf(resolved)), nil
}

// commonAncestorOf computes the ancestor of already-resolved absolute paths.
//
// Every directory prefix of every path (including the degenerate empty
// prefix, excluding the full path itself) increments a usage counter. The
// ancestor is the longest prefix whose count equals the number of inputs.
// Equal-length candidates resolve to the lexicographically smallest prefix,
// which keeps the result deterministic regardless of map iteration order.
func commonAncestorOf(resolved []string) string {
	sep := string(filepath.Separator)

	usage := make(map[string]int)
	for _, path := range resolved {
		parts := strings.Split(path, sep)
		for i := range parts {
			prefix := strings.Join(parts[:i], sep)
			if i > 0 {
				prefix += sep
			}
			usage[prefix]++
		}
	}

	var best string
	found := false
	for prefix, count := range usage {
		if count != len(resolved) {
			continue
		}
		switch {
		case !found:
			best = prefix
			found = true
		case len(prefix) > len(best):
			best = prefix
		case len(prefix) == len(best) && prefix < best:
			best = prefix
		}
	}

	return best
}

// resolveAll resolves every file to a cleaned absolute path, preserving the
// input order. The same resolution is used for ancestor computation and for
// destination derivation so the two can never disagree within one batch.
func resolveAll(files []types.FilesystemPath) ([]string, error) {
	resolved := make([]string, len(files))
	for i, f := range files {
		abs, err := filepath.Abs(string(f))
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", f, err)
		}
		resolved[i] = abs
	}
	return resolved, nil
}
