package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rubik3d/internal/cube"
)

// stickerInset shrinks stickers relative to the unit face so the body
// color shows through as a border, and stickerLift keeps them just off
// the surface to avoid z-fighting.
const (
	stickerInset = 0.82
	stickerLift  = 0.002
)

// quad is four corners in unit-local space, counter-clockwise as seen
// from outside.
type quad struct {
	corners [4]rl.Vector3
	color   rl.Color
}

// UnitView renders one sub-cube. The engine pushes world transforms into
// it through SetTransform; geometry is precomputed in local space once.
// The body is drawn as transformed quads rather than a raylib cube so it
// follows the unit's orientation mid-animation.
type UnitView struct {
	position    rl.Vector3
	orientation rl.Matrix
	quads       []quad
}

// NewUnitView builds the view for one unit: a solid body plus stickers on
// every face that sits on the cube's outer shell at the home position.
func NewUnitView(u *cube.Unit, unitSize float32, faceColors [6]rl.Color, bodyColor rl.Color) *UnitView {
	v := &UnitView{
		position:    u.Position,
		orientation: u.Orientation,
	}

	shell := unitSize // outer layer sits one unit from the center
	half := unitSize / 2
	type face struct {
		outward bool
		normal  rl.Vector3
		sticker rl.Color
	}
	faces := []face{
		{u.Home.X > shell-half, rl.Vector3{X: 1}, faceColors[cube.ColorRight]},
		{u.Home.X < -shell+half, rl.Vector3{X: -1}, faceColors[cube.ColorLeft]},
		{u.Home.Y > shell-half, rl.Vector3{Y: 1}, faceColors[cube.ColorUp]},
		{u.Home.Y < -shell+half, rl.Vector3{Y: -1}, faceColors[cube.ColorDown]},
		{u.Home.Z > shell-half, rl.Vector3{Z: 1}, faceColors[cube.ColorFront]},
		{u.Home.Z < -shell+half, rl.Vector3{Z: -1}, faceColors[cube.ColorBack]},
	}
	for _, f := range faces {
		v.quads = append(v.quads, faceQuad(f.normal, half, 1, 0, bodyColor))
		if f.outward {
			v.quads = append(v.quads, faceQuad(f.normal, half, stickerInset, stickerLift, f.sticker))
		}
	}

	u.Handle = v
	return v
}

// faceQuad builds a quad on the face with the given outward normal,
// scaled by inset and lifted off the surface by lift.
func faceQuad(normal rl.Vector3, half, inset, lift float32, color rl.Color) quad {
	// Two tangents spanning the face plane.
	var tu, tv rl.Vector3
	switch {
	case normal.X != 0:
		tu = rl.Vector3{Z: -normal.X}
		tv = rl.Vector3{Y: 1}
	case normal.Y != 0:
		tu = rl.Vector3{X: 1}
		tv = rl.Vector3{Z: -normal.Y}
	default:
		tu = rl.Vector3{X: normal.Z}
		tv = rl.Vector3{Y: 1}
	}

	center := rl.Vector3Scale(normal, half+lift)
	ext := half * inset
	tu = rl.Vector3Scale(tu, ext)
	tv = rl.Vector3Scale(tv, ext)

	return quad{
		corners: [4]rl.Vector3{
			rl.Vector3Add(center, rl.Vector3Add(rl.Vector3Scale(tu, -1), rl.Vector3Scale(tv, -1))),
			rl.Vector3Add(center, rl.Vector3Add(tu, rl.Vector3Scale(tv, -1))),
			rl.Vector3Add(center, rl.Vector3Add(tu, tv)),
			rl.Vector3Add(center, rl.Vector3Add(rl.Vector3Scale(tu, -1), tv)),
		},
		color: color,
	}
}

// SetTransform implements cube.Transformable.
func (v *UnitView) SetTransform(position rl.Vector3, orientation rl.Matrix) {
	v.position = position
	v.orientation = orientation
}

// Draw renders the unit at its current world transform. Must be called
// inside a 3D mode block.
func (v *UnitView) Draw() {
	for _, q := range v.quads {
		var w [4]rl.Vector3
		for i, c := range q.corners {
			w[i] = rl.Vector3Add(rl.Vector3Transform(c, v.orientation), v.position)
		}
		rl.DrawTriangle3D(w[0], w[1], w[2], q.color)
		rl.DrawTriangle3D(w[0], w[2], w[3], q.color)
		// Reversed winding so the quad survives backface culling from
		// every viewing angle.
		rl.DrawTriangle3D(w[2], w[1], w[0], q.color)
		rl.DrawTriangle3D(w[3], w[2], w[0], q.color)
	}
}
