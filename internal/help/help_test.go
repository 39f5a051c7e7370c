package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"InvalidArgument", "invalid_argument"},
		{"IndexOutOfRange", "index_out_of_range"},
		{" MalformedEscape ", "malformed_escape"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeName(tt.in))
		})
	}
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "x", StringOrDefault("x", "y"))
	assert.Equal(t, "y", StringOrDefault("", "y"))
	assert.Equal(t, '#', RuneOrDefault('#', '.'))
	assert.Equal(t, '.', RuneOrDefault(0, '.'))
}
