// SPDX-License-Identifier: MPL-2.0

// Package relocate copies a batch of files into a new root while preserving
// their directory structure below the common ancestor directory.
//
// The common ancestor is the longest directory prefix shared by every file in
// the batch. Relocation is all-or-nothing with respect to validation: every
// destination path is checked for collisions before any directory is created
// or any file is copied. There is no rollback once copying has begun; a batch
// interrupted by an I/O error leaves the files copied so far in place.
package relocate
