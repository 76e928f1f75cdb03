// SPDX-License-Identifier: MPL-2.0

// Package tui provides the terminal user interface components crowbar needs,
// built on charmbracelet/bubbletea. The only component today is the yes/no
// confirmation prompt that gates destructive operations.
package tui
