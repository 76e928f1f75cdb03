// SPDX-License-Identifier: MPL-2.0

package registry

// SeverityWarning indicates a recoverable discovery warning. Discovery never
// aborts on a malformed plugin, so warnings are the only severity emitted.
const SeverityWarning Severity = "warning"

// Diagnostic codes emitted during plugin discovery.
const (
	// CodeDescriptorMissing means a plugin directory has no descriptor file.
	CodeDescriptorMissing = "plugin_descriptor_missing"
	// CodeDescriptorParseFailed means a descriptor file could not be parsed.
	CodeDescriptorParseFailed = "plugin_descriptor_parse_failed"
	// CodeDescriptorInvalid means a descriptor carries an invalid group or name.
	CodeDescriptorInvalid = "plugin_descriptor_invalid"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// Diagnostic represents a structured discovery diagnostic that is
	// returned to callers (rather than written to stderr) for consistent
	// rendering policy. A malformed plugin never aborts discovery.
	Diagnostic struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g., "plugin_descriptor_parse_failed").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)
