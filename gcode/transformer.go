package gcode

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fornellas/slogxt/log"

	iFmt "github.com/fornellas/gct/internal/fmt"
)

// Transformer rewrites motion coordinates line by line, tracking the
// cursor's absolute position across absolute/relative mode switches. Lines
// must be fed strictly in input order: each motion line's output depends
// on the cumulative cursor state left by every preceding one.
type Transformer struct {
	matrix    Matrix
	precision uint
	position  Point
	mode      Mode
}

// NewTransformer creates a Transformer for the given transform, with the
// cursor at the origin and no coordinate mode set. precision is the number
// of fractional digits of emitted coordinate tokens.
func NewTransformer(matrix Matrix, precision uint) *Transformer {
	return &Transformer{matrix: matrix, precision: precision}
}

// Position returns the cursor's tracked absolute position, in input
// (pre-transform) coordinates. Applying the transform to it yields the
// machine's commanded position in output coordinates.
func (t *Transformer) Position() Point {
	return t.position
}

// SetPosition sets the cursor's absolute position, in input coordinates.
func (t *Transformer) SetPosition(position Point) {
	t.position = position
}

// Mode returns the current coordinate mode.
func (t *Transformer) Mode() Mode {
	return t.mode
}

// SetMode sets the coordinate mode.
func (t *Transformer) SetMode(mode Mode) {
	t.mode = mode
}

// resolveDestination computes the absolute destination of a motion command
// from the cursor position before it. In relative mode each axis defaults
// to a zero delta when absent; in absolute mode (or before any mode switch
// was seen) an absent axis carries the previous absolute value forward.
func resolveDestination(position Point, mode Mode, x, y *float64) Point {
	if mode == ModeRelative {
		destination := position
		if x != nil {
			destination.X += *x
		}
		if y != nil {
			destination.Y += *y
		}
		return destination
	}
	destination := position
	if x != nil {
		destination.X = *x
	}
	if y != nil {
		destination.Y = *y
	}
	return destination
}

// motion transforms one motion line carrying at least one coordinate and
// advances the cursor. Both the previous and destination absolute points
// are transformed; in relative mode each present axis emits the delta of
// the transformed points, in absolute mode the transformed destination
// value. The cursor tracks the true pre-transform destination, so that a
// later line omitting an axis carries the true value forward rather than
// an already transformed one.
func (t *Transformer) motion(line *Line) string {
	previous := t.position
	destination := resolveDestination(previous, t.mode, line.x, line.y)

	previousT := t.matrix.Apply(previous)
	destinationT := t.matrix.Apply(destination)
	t.position = destination

	var xToken, yToken string
	if t.mode == ModeRelative {
		if line.x != nil {
			xToken = "X" + iFmt.SprintFloatFixed(destinationT.X-previousT.X, t.precision)
		}
		if line.y != nil {
			yToken = "Y" + iFmt.SprintFloatFixed(destinationT.Y-previousT.Y, t.precision)
		}
	} else {
		if line.x != nil {
			xToken = "X" + iFmt.SprintFloatFixed(destinationT.X, t.precision)
		}
		if line.y != nil {
			yToken = "Y" + iFmt.SprintFloatFixed(destinationT.Y, t.precision)
		}
	}

	return line.Rebuild(xToken, yToken)
}

// Next processes one raw input line (without trailing newline) and returns
// the corresponding output line. Mode switches update the coordinate mode
// and pass through unchanged, motion lines with at least one coordinate
// are rewritten, everything else passes through byte-identical.
func (t *Transformer) Next(raw string) (string, error) {
	line, err := ParseLine(raw)
	if err != nil {
		return "", err
	}

	switch line.Kind {
	case LineKindModeSwitch:
		t.mode = line.Mode
		return line.Raw, nil
	case LineKindMotion:
		if line.x == nil && line.y == nil {
			return line.Raw, nil
		}
		return t.motion(line), nil
	default:
		return line.Raw, nil
	}
}

// Run streams all lines from r through the transformer, writing one output
// line per input line to w. It fails on the first malformed coordinate
// token, without per-line recovery.
func (t *Transformer) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	// Degrees 0 with no shift composes to exactly the identity matrix, so
	// this catches precisely the "no transform requested" case.
	if t.matrix == Identity() {
		logger := log.MustLogger(ctx)
		logger.Warn("No rotation or shift requested: coordinates will only be reformatted")
	}

	scanner := bufio.NewScanner(r)
	var lineNumber uint
	for scanner.Scan() {
		lineNumber++
		outputLine, err := t.Next(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
		n, err := fmt.Fprintln(w, outputLine)
		if err != nil {
			return err
		}
		if n != len(outputLine)+1 {
			return fmt.Errorf("line %d: short write", lineNumber)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("line %d: %w", lineNumber, err)
	}
	return nil
}
