package cube

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Axis is one of the three principal rotation axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Vector returns the unit vector along the axis.
func (a Axis) Vector() rl.Vector3 {
	switch a {
	case AxisX:
		return rl.Vector3{X: 1}
	case AxisY:
		return rl.Vector3{Y: 1}
	default:
		return rl.Vector3{Z: 1}
	}
}

// Component extracts the coordinate of v along the axis.
func (a Axis) Component(v rl.Vector3) float32 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Section identifies one of the three layers along an axis:
// 0 = negative slice, 1 = middle slice, 2 = positive slice.
type Section int

// Direction is the sense of a quarter turn. Clockwise rotates by +90
// degrees about the axis vector, counter-clockwise by -90.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Angle returns the signed quarter-turn angle in radians.
func (d Direction) Angle() float32 {
	if d == Clockwise {
		return rl.Pi / 2
	}
	return -rl.Pi / 2
}

func (d Direction) String() string {
	if d == Clockwise {
		return "cw"
	}
	return "ccw"
}
