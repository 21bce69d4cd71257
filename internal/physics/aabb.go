package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// NewAABBFromPoints returns the smallest box enclosing all points.
func NewAABBFromPoints(points []rl.Vector3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Min.Z = min(box.Min.Z, p.Z)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
		box.Max.Z = max(box.Max.Z, p.Z)
	}
	return box
}

// Center returns the geometric center of the box.
func (a AABB) Center() rl.Vector3 {
	return rl.Vector3{
		X: (a.Min.X + a.Max.X) / 2,
		Y: (a.Min.Y + a.Max.Y) / 2,
		Z: (a.Min.Z + a.Max.Z) / 2,
	}
}

// Size returns the full extents of the box.
func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Grow returns the box expanded by margin on every side.
func (a AABB) Grow(margin float32) AABB {
	m := rl.Vector3{X: margin, Y: margin, Z: margin}
	return AABB{
		Min: rl.Vector3Subtract(a.Min, m),
		Max: rl.Vector3Add(a.Max, m),
	}
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}
