package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "short text untouched", input: "hello", max: 10, expected: "hello"},
		{name: "exact length untouched", input: "hello", max: 5, expected: "hello"},
		{name: "long text gets ellipsis", input: "hello world", max: 8, expected: "hello..."},
		{name: "tiny budget hard-cuts", input: "hello", max: 2, expected: "he"},
		{name: "zero budget untouched", input: "hello", max: 0, expected: "hello"},
		{name: "cyrillic truncated on runes", input: "утилиты для Termux", max: 10, expected: "утилиты..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitText(tt.input, tt.max)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
