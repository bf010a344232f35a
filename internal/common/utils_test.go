//go:build unit

package common

import (
	"testing"
)

func TestNormalizeBasePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty",
			input:    "",
			expected: "",
		},
		{
			name:     "Root",
			input:    "/",
			expected: "",
		},
		{
			name:     "MissingLeadingSlash",
			input:    "api",
			expected: "/api",
		},
		{
			name:     "TrailingSlash",
			input:    "/api/",
			expected: "/api",
		},
		{
			name:     "NestedPath",
			input:    "/api/v1",
			expected: "/api/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBasePath(tt.input); got != tt.expected {
				t.Errorf("NormalizeBasePath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
