// SPDX-License-Identifier: MPL-2.0

// Package manifest reads, merges, and writes the host project's package
// manifest (package.json).
//
// Merging is a pure function over an explicit Document value; callers own
// reading and writing the file, which keeps the merge logic decoupled from
// filesystem state. Key collisions are last-write-wins and reported back to
// the caller as Overwrite records for warning display.
package manifest
