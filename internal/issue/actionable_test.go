// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "relocate files",
			},
			expected: "failed to relocate files",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "merge manifest",
				Resource:  "./package.json",
			},
			expected: "failed to merge manifest: ./package.json",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "parse descriptor",
				Cause:     errors.New("unexpected token at line 5"),
			},
			expected: "failed to parse descriptor: unexpected token at line 5",
		},
		{
			name: "operation with resource and cause",
			err: &ActionableError{
				Operation: "parse descriptor",
				Resource:  "plugin.toml",
				Cause:     errors.New("unexpected token"),
			},
			expected: "failed to parse descriptor: plugin.toml: unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	err := NewErrorContext().
		WithOperation("relocate files").
		WithResource("/app/a.ts").
		WithSuggestion("Remove the colliding file and re-run").
		Wrap(errors.New("destination already exists")).
		Build()

	got := err.Format(false)
	if !strings.Contains(got, "failed to relocate files") {
		t.Errorf("Format() missing operation: %q", got)
	}
	if !strings.Contains(got, "• Remove the colliding file and re-run") {
		t.Errorf("Format() missing suggestion: %q", got)
	}
	if strings.Contains(got, "Error chain") {
		t.Errorf("non-verbose Format() should not include the error chain: %q", got)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("verbose Format() should include the error chain: %q", verbose)
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewErrorContext().WithOperation("merge manifest").Wrap(cause).Build()
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestErrorContextBuildRequiresOperation(t *testing.T) {
	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
}
