package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit describes where a ray entered a box.
type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3 // axis-aligned outward face normal at the hit
	Distance float32
}

// RaycastBox intersects a ray with an axis-aligned box using the slab
// method and returns the closest hit with its face normal.
func RaycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (box.Min.X - origin.X) / direction.X
		t2 := (box.Max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < box.Min.X || origin.X > box.Max.X {
		return RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (box.Min.Y - origin.Y) / direction.Y
		t2 := (box.Max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < box.Min.Y || origin.Y > box.Max.Y {
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (box.Min.Z - origin.Z) / direction.Z
		t2 := (box.Max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < box.Min.Z || origin.Z > box.Max.Z {
		return RaycastHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	return RaycastHit{Point: point, Normal: faceNormal(point, box), Distance: t}, true
}

// faceNormal derives the outward normal of the box face the point lies on.
func faceNormal(point rl.Vector3, box AABB) rl.Vector3 {
	const epsilon = 0.001
	switch {
	case abs(point.X-box.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case abs(point.X-box.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case abs(point.Y-box.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case abs(point.Y-box.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case abs(point.Z-box.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
