package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"budi", "budi"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
		{"TRX-1700000000000", "TRX-1700000000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, escapeLike(tt.in), "input %q", tt.in)
	}
}
