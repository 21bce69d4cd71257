package cube

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transformable is the capability a rendering backend exposes for one
// drawable piece. The engine pushes the piece's world transform into it
// after every mutation; it never calls back into the renderer otherwise.
type Transformable interface {
	SetTransform(position rl.Vector3, orientation rl.Matrix)
}

// Unit is one of the 27 sub-cubes. Its identity is the grid slot it was
// created in (Home); Position and Orientation accumulate every rotation
// applied since. Units are created once by the Cube and mutated in place.
type Unit struct {
	Home        rl.Vector3 // slot position at creation, never changes
	Position    rl.Vector3
	Orientation rl.Matrix // accumulated rotation, starts as identity

	// Handle is the opaque renderable this unit drives. May be nil in
	// headless use (tests, scramble generation).
	Handle Transformable
}

// NewUnit creates a unit at its home slot with identity orientation.
func NewUnit(home rl.Vector3) *Unit {
	return &Unit{
		Home:        home,
		Position:    home,
		Orientation: rl.MatrixIdentity(),
	}
}

// Translate moves the unit by the given offset.
func (u *Unit) Translate(offset rl.Vector3) {
	u.Position = rl.Vector3Add(u.Position, offset)
	u.push()
}

// RotateAround rotates the unit by angle radians about an arbitrary axis
// through pivot. Both the position and the accumulated orientation are
// updated, so the rotation is rigid: translate to the pivot frame, rotate,
// translate back.
func (u *Unit) RotateAround(axis rl.Vector3, pivot rl.Vector3, angle float32) {
	rot := rl.MatrixRotate(axis, angle)

	p := rl.Vector3Subtract(u.Position, pivot)
	p = rl.Vector3Transform(p, rot)
	u.Position = rl.Vector3Add(p, pivot)

	// Existing orientation first, then the new increment.
	u.Orientation = rl.MatrixMultiply(u.Orientation, rot)
	u.push()
}

func (u *Unit) push() {
	if u.Handle != nil {
		u.Handle.SetTransform(u.Position, u.Orientation)
	}
}

// SnapToGrid rounds the position onto the nearest grid coordinate. Called
// after a completed rotation to cancel accumulated floating point drift.
func (u *Unit) SnapToGrid(unitSize float32) {
	u.Position.X = snapCoord(u.Position.X, unitSize)
	u.Position.Y = snapCoord(u.Position.Y, unitSize)
	u.Position.Z = snapCoord(u.Position.Z, unitSize)
	u.push()
}

func snapCoord(c, unitSize float32) float32 {
	return unitSize * float32(math.Round(float64(c/unitSize)))
}
