package gcode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCenterFormat is returned when a rotation center string is not
// two real numbers joined by a single 'x'.
var ErrInvalidCenterFormat = errors.New("center must be in 'XxY' format (eg '125x100')")

// ParseCenter parses a compact "XxY" center string (eg "125x100") into a
// Point.
func ParseCenter(value string) (Point, error) {
	xStr, yStr, found := strings.Cut(value, "x")
	if !found || strings.Contains(yStr, "x") {
		return Point{}, fmt.Errorf("%q: %w", value, ErrInvalidCenterFormat)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xStr), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%q: %w", value, ErrInvalidCenterFormat)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(yStr), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%q: %w", value, ErrInvalidCenterFormat)
	}
	return Point{X: x, Y: y}, nil
}

// NewMatrixTransform composes the rigid transform applied to every motion
// coordinate: rotation by degrees clockwise about center, followed by
// translation by (shiftX, shiftY). With degrees 0 the rotational factor is
// identity and center has no numeric effect.
func NewMatrixTransform(degrees float64, center Point, shiftX, shiftY float64) Matrix {
	m := Translation(shiftX, shiftY)
	if degrees != 0 {
		radians := degrees * math.Pi / 180
		// Rotation about center: translate to origin, rotate, translate
		// back. The global shift composes last.
		m = m.
			Mul(Translation(center.X, center.Y)).
			Mul(RotationCW(radians)).
			Mul(Translation(-center.X, -center.Y))
	}
	return m
}
