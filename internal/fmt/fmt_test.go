package fmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSprintFloatFixed(t *testing.T) {
	testCases := []struct {
		value    float64
		decimal  uint
		expected string
	}{
		{10, 3, "10.000"},
		{-2.5, 1, "-2.5"},
		{1.23456, 3, "1.235"},
		{0, 3, "0.000"},
		{3.7, 0, "4"},
		{1.5, 4, "1.5000"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, SprintFloatFixed(tc.value, tc.decimal))
		})
	}
}
