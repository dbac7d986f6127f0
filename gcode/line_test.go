package gcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLineClassify(t *testing.T) {
	testCases := []struct {
		raw  string
		kind LineKind
		mode Mode
	}{
		{"G90", LineKindModeSwitch, ModeAbsolute},
		{"g90", LineKindModeSwitch, ModeAbsolute},
		{"  G90  ", LineKindModeSwitch, ModeAbsolute},
		{"G90 ; absolute", LineKindModeSwitch, ModeAbsolute},
		{"G91", LineKindModeSwitch, ModeRelative},
		{"G0 X1 Y2", LineKindMotion, ModeUnset},
		{"G1 F1500", LineKindMotion, ModeUnset},
		{"g1 x5", LineKindMotion, ModeUnset},
		{"G0.5 X1", LineKindMotion, ModeUnset},
		{"", LineKindPassThrough, ModeUnset},
		{"   ", LineKindPassThrough, ModeUnset},
		{"; just a comment", LineKindPassThrough, ModeUnset},
		{"G900", LineKindPassThrough, ModeUnset},
		{"G01 X5", LineKindPassThrough, ModeUnset},
		{"G21", LineKindPassThrough, ModeUnset},
		{"M3 S1000", LineKindPassThrough, ModeUnset},
		{"$H", LineKindPassThrough, ModeUnset},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			line, err := ParseLine(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.kind, line.Kind)
			require.Equal(t, tc.mode, line.Mode)
			require.Equal(t, tc.raw, line.Raw)
		})
	}
}

func TestParseLineCoordinates(t *testing.T) {
	testCases := []struct {
		raw string
		x   *float64
		y   *float64
	}{
		{"G1 X10.5 Y-3", f(10.5), f(-3)},
		{"G1 Y4", nil, f(4)},
		{"G1 X4", f(4), nil},
		{"G0 F100 X2", f(2), nil},
		{"G1 Y2 X1", f(1), f(2)},
		{"G1 X+5", f(5), nil},
		{"G1 Z5", nil, nil},
		// Axis letters are only recognized uppercase and space-prefixed.
		{"G1 x5 y6", nil, nil},
		{"G1X5", nil, nil},
		// Comment content is never scanned for coordinates.
		{"G1 F100 ; X5 Y6", nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			line, err := ParseLine(tc.raw)
			require.NoError(t, err)
			require.Equal(t, LineKindMotion, line.Kind)
			requireCoordinate(t, tc.x, line.X)
			requireCoordinate(t, tc.y, line.Y)
		})
	}
}

func f(value float64) *float64 {
	return &value
}

func requireCoordinate(t *testing.T, expected *float64, get func() (float64, bool)) {
	t.Helper()
	value, ok := get()
	if expected == nil {
		require.False(t, ok)
		return
	}
	require.True(t, ok)
	require.Equal(t, *expected, value)
}

func TestParseLineMalformedNumber(t *testing.T) {
	for _, raw := range []string{"G1 X10abc", "G1 Yfoo", "G1 X10 Y--2"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseLine(raw)
			require.ErrorIs(t, err, ErrMalformedNumber)
		})
	}
}

func TestRebuild(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		xToken   string
		yToken   string
		expected string
	}{
		{
			"replaces both axes",
			"G1 X10 Y20",
			"X1.000", "Y2.000",
			"G1 X1.000 Y2.000",
		},
		{
			"keeps other words",
			"G1 F100 X10 Y20",
			"X1.000", "Y2.000",
			"G1 F100 X1.000 Y2.000",
		},
		{
			"reorders to X then Y",
			"G1 Y20 X10",
			"X1.000", "Y2.000",
			"G1 X1.000 Y2.000",
		},
		{
			"single axis",
			"G1 X10",
			"X1.000", "",
			"G1 X1.000",
		},
		{
			"comment is re-attached verbatim",
			"G1 X10 Y20 ; move  to corner",
			"X1.000", "Y2.000",
			"G1 X1.000 Y2.000 ; move  to corner",
		},
		{
			"trailing words move before new tokens",
			"G1 X10 F100",
			"X1.000", "",
			"G1 F100 X1.000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := ParseLine(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.expected, line.Rebuild(tc.xToken, tc.yToken))
		})
	}
}
