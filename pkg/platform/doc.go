// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities, such as
// centralized OS name constants for runtime.GOOS comparisons.
package platform
