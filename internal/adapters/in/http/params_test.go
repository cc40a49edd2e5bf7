package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderID(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{"0", 0, true},
		{"2", 2, true},
		{"42", 42, true},
		{"2abc", 2, true},
		{"  7", 7, true},
		{"+3", 3, true},
		{"-1", -1, true},
		{"-0", 0, true},
		{"1.9", 1, true},
		{"0x10", 16, true},
		{"0x", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseOrderID(tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
