// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing error reporting: actionable
// errors with operation/resource/suggestion context, and a catalog of known
// failure modes rendered as styled markdown help text.
package issue
