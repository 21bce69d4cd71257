package cube

import (
	"github.com/gen2brain/raylib-go/easings"
	rl "github.com/gen2brain/raylib-go/raylib"

	"rubik3d/internal/physics"
)

// animation is one in-flight rotation. The affected subset and its pivot
// are captured when the animation starts: layer membership cannot change
// mid-rotation, so selecting once is safe, and the pivot is the subset's
// own bounds center (the whole assembly's center for whole-cube turns).
type animation struct {
	axis        Axis
	units       []*Unit
	pivot       rl.Vector3
	target      float32 // signed angle in radians
	duration    float32 // seconds; <= 0 completes on the first tick
	elapsed     float32
	lastApplied float32
	wholeCube   bool
	move        *Move // recorded on completion when set
	onComplete  func()
}

func newAnimation(axis Axis, units []*Unit, target, duration float32, wholeCube bool, move *Move, onComplete func()) *animation {
	return &animation{
		axis:       axis,
		units:      units,
		pivot:      boundsCenter(units),
		target:     target,
		duration:   duration,
		wholeCube:  wholeCube,
		move:       move,
		onComplete: onComplete,
	}
}

// boundsCenter returns the center of the bounding volume of the units.
func boundsCenter(units []*Unit) rl.Vector3 {
	points := make([]rl.Vector3, len(units))
	for i, u := range units {
		points[i] = u.Position
	}
	return physics.NewAABBFromPoints(points).Center()
}

// easeInOutCubic is the animation curve: slow start, slow stop.
func easeInOutCubic(t float32) float32 {
	return easings.CubicInOut(t, 0, 1, 1)
}

// advance moves the animation forward by dt seconds, applying only the
// angle delta since the previous tick so units accumulate relative
// transforms. Returns true when the animation has finished.
func (a *animation) advance(dt float32) bool {
	a.elapsed += dt

	progress := float32(1)
	if a.duration > 0 {
		progress = a.elapsed / a.duration
		if progress > 1 {
			progress = 1
		}
	}

	current := a.target * easeInOutCubic(progress)
	delta := current - a.lastApplied
	a.lastApplied = current

	axisVec := a.axis.Vector()
	for _, u := range a.units {
		u.RotateAround(axisVec, a.pivot, delta)
	}

	return progress >= 1
}
