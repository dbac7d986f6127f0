package gcode

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedNumber is returned when an X or Y coordinate token's value
// cannot be parsed as a real number.
var ErrMalformedNumber = errors.New("malformed coordinate number")

// LineKind classifies one raw input line.
type LineKind int

const (
	// LineKindPassThrough lines are emitted byte-identical to the input.
	LineKindPassThrough LineKind = iota
	// LineKindModeSwitch lines set the coordinate mode (G90 / G91).
	LineKindModeSwitch
	// LineKindMotion lines are rapid or linear moves (G0 / G1).
	LineKindMotion
)

// Mode is the coordinate interpretation set by G90 / G91.
type Mode int

const (
	// ModeUnset is the state before any G90 / G91 has been seen. Motion
	// commands are still accepted and treated as absolute: the reference
	// behavior never required an explicit mode, so neither do we.
	ModeUnset Mode = iota
	ModeAbsolute
	ModeRelative
)

var modeNames = map[Mode]string{
	ModeUnset:    "Unset",
	ModeAbsolute: "Absolute",
	ModeRelative: "Relative",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	panic(fmt.Sprintf("unexpected Mode: %d", int(m)))
}

// Line is the parsed view of one raw input line.
type Line struct {
	// Raw is the original line, without its trailing newline.
	Raw string
	// Kind tells how the processing loop must handle this line.
	Kind LineKind
	// Mode is the coordinate mode this line sets, when Kind is
	// LineKindModeSwitch.
	Mode Mode

	body       string
	comment    string
	hasComment bool
	x          *float64
	y          *float64
}

// X returns the X coordinate token value and whether one was present.
func (l *Line) X() (float64, bool) {
	if l.x == nil {
		return 0, false
	}
	return *l.x, true
}

// Y returns the Y coordinate token value and whether one was present.
func (l *Line) Y() (float64, bool) {
	if l.y == nil {
		return 0, false
	}
	return *l.y, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_'
}

// hasLeadingCommand reports whether body starts with the given command
// token, case-insensitive, ending at a token boundary: "g0 X1" matches
// "G0", but "G01" and "G900" match nothing.
func hasLeadingCommand(body, command string) bool {
	if len(body) < len(command) {
		return false
	}
	if !strings.EqualFold(body[:len(command)], command) {
		return false
	}
	return len(body) == len(command) || !isWordChar(body[len(command)])
}

// extractCoordinate returns the value of the first whitespace-prefixed
// axis token (eg " X12.5") in body, or nil when absent. The token value
// is the run of non-whitespace characters after the axis letter; if it
// does not parse as a number the whole run fails with ErrMalformedNumber.
func extractCoordinate(body string, axis byte) (*float64, error) {
	for i := 1; i < len(body); i++ {
		if body[i] != axis || !isSpace(body[i-1]) {
			continue
		}
		j := i + 1
		for j < len(body) && !isSpace(body[j]) {
			j++
		}
		if j == i+1 {
			continue
		}
		value, err := strconv.ParseFloat(body[i+1:j], 64)
		if err != nil {
			return nil, fmt.Errorf("%c%s: %w", axis, body[i+1:j], ErrMalformedNumber)
		}
		return &value, nil
	}
	return nil, nil
}

// ParseLine classifies one raw input line and, for motion commands,
// extracts its X/Y coordinate tokens. The comment (everything after the
// first ';') is split off before classification, so commands are detected
// regardless of trailing comments and comment text is never scanned for
// coordinates.
func ParseLine(raw string) (*Line, error) {
	line := &Line{Raw: raw}

	body := raw
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		body = raw[:i]
		line.comment = raw[i+1:]
		line.hasComment = true
	}
	line.body = strings.TrimSpace(body)

	switch {
	case line.body == "":
		return line, nil
	case hasLeadingCommand(line.body, "G90"):
		line.Kind = LineKindModeSwitch
		line.Mode = ModeAbsolute
		return line, nil
	case hasLeadingCommand(line.body, "G91"):
		line.Kind = LineKindModeSwitch
		line.Mode = ModeRelative
		return line, nil
	case hasLeadingCommand(line.body, "G0"), hasLeadingCommand(line.body, "G1"):
		line.Kind = LineKindMotion
	default:
		return line, nil
	}

	var err error
	if line.x, err = extractCoordinate(line.body, 'X'); err != nil {
		return nil, err
	}
	if line.y, err = extractCoordinate(line.body, 'Y'); err != nil {
		return nil, err
	}
	return line, nil
}

// stripCoordinates removes every whitespace-prefixed X/Y coordinate token
// from body, each together with its single preceding whitespace character.
func stripCoordinates(body string) string {
	var buff bytes.Buffer
	for i := 0; i < len(body); {
		c := body[i]
		if isSpace(c) && i+1 < len(body) && (body[i+1] == 'X' || body[i+1] == 'Y') {
			j := i + 2
			for j < len(body) && !isSpace(body[j]) {
				j++
			}
			if j > i+2 {
				i = j
				continue
			}
		}
		buff.WriteByte(c)
		i++
	}
	return buff.String()
}

// Rebuild assembles the output line for a motion command: the original
// body with all X/Y coordinate tokens removed, the new tokens appended in
// X-then-Y order, and the original comment re-attached verbatim.
func (l *Line) Rebuild(xToken, yToken string) string {
	out := stripCoordinates(l.body)
	if xToken != "" {
		out += " " + xToken
	}
	if yToken != "" {
		out += " " + yToken
	}
	out = strings.TrimSpace(out)
	if l.hasComment {
		out += " ;" + l.comment
	}
	return out
}
