package cube

import (
	"strings"
	"time"
)

// Face names a rotatable slice in standard cube notation. The six outer
// faces are R/L/U/D/F/B; M/E/S are the middle slices (following the
// L/D/F sense respectively).
type Face string

const (
	FaceR Face = "R" // Right  (+x)
	FaceL Face = "L" // Left   (-x)
	FaceU Face = "U" // Up     (+y)
	FaceD Face = "D" // Down   (-y)
	FaceF Face = "F" // Front  (+z)
	FaceB Face = "B" // Back   (-z)
	FaceM Face = "M" // Middle slice, x axis
	FaceE Face = "E" // Equator slice, y axis
	FaceS Face = "S" // Standing slice, z axis
)

// Turn is the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise quarter turn
	CCW    Turn = -1 // Counter-clockwise quarter turn
	Double Turn = 2  // Half turn
)

// Move is a single notated turn, optionally timestamped.
type Move struct {
	Face Face
	Turn Turn
	Time time.Time
}

// faceSpec maps each face letter onto the geometric engine: the rotation
// axis, the layer section, and the engine direction that corresponds to a
// notation-clockwise turn (clockwise as seen from outside that face).
type faceSpec struct {
	axis    Axis
	section Section
	cw      Direction
}

var faceSpecs = map[Face]faceSpec{
	FaceR: {AxisX, 2, CounterClockwise},
	FaceL: {AxisX, 0, Clockwise},
	FaceU: {AxisY, 2, CounterClockwise},
	FaceD: {AxisY, 0, Clockwise},
	FaceF: {AxisZ, 2, CounterClockwise},
	FaceB: {AxisZ, 0, Clockwise},
	FaceM: {AxisX, 1, Clockwise},
	FaceE: {AxisY, 1, Clockwise},
	FaceS: {AxisZ, 1, CounterClockwise},
}

// Rotation resolves the move into engine terms: the axis and section to
// select, and the signed target angle in radians.
func (m Move) Rotation() (axis Axis, section Section, angle float32) {
	spec, ok := faceSpecs[m.Face]
	if !ok {
		panic("cube: move with unknown face " + string(m.Face))
	}
	angle = spec.cw.Angle()
	switch m.Turn {
	case CCW:
		angle = -angle
	case Double:
		angle *= 2
	}
	return spec.axis, spec.section, angle
}

// MoveFor is the inverse of Rotation for quarter turns: it names the move
// that rotates the given layer in the given engine direction.
func MoveFor(axis Axis, section Section, dir Direction) Move {
	for face, spec := range faceSpecs {
		if spec.axis != axis || spec.section != section {
			continue
		}
		turn := CW
		if spec.cw != dir {
			turn = CCW
		}
		return Move{Face: face, Turn: turn}
	}
	panic("cube: no move for " + axis.String() + " section")
}

// Notation returns the standard notation string: R, R', R2, ...
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the move that undoes this one. Double is its own inverse.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// WithTime returns a copy of the move with the given timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses one token of standard notation: R, R', R2, u, m...
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	face := Face(strings.ToUpper(s[:1]))
	if _, ok := faceSpecs[face]; !ok {
		return Move{}, ErrInvalidNotation
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2", "2'", "2`":
			turn = Double
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated move sequence like "R U R' U'".
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// FormatMoves joins moves into a space-separated notation string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
