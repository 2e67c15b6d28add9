package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampProgress(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"below range", -5, 0},
		{"lower bound", 0, 0},
		{"in range", 42, 42},
		{"upper bound", 100, 100},
		{"above range", 150, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clampProgress(tc.in))
		})
	}
}
