package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{"-7.5", -7.5},
		{"  250  ", 250},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-Inf", 0},
		{"1e3", 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseNumeric(tt.in), "input %q", tt.in)
	}
}
