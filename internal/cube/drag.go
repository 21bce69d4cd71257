package cube

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rubik3d/internal/physics"
)

// DragThreshold is how far (in pixels) the pointer must travel from its
// press position before a drag commits to a rotation.
const DragThreshold = 10

type dragPhase int

const (
	dragIdle      dragPhase = iota
	dragPrimed              // pointer down, surface hit recorded
	dragResolving           // moving, still under the commit threshold
	dragActive              // axis and section resolved, angle tracked
)

// DragResult is what a finished drag session commits: the layer that was
// rotated and the residual angle still needed to land exactly on the
// nearest quarter-turn boundary.
type DragResult struct {
	Axis     Axis
	Section  Section
	Residual float32 // remaining delta to reach Snapped
	Snapped  float32 // final angle: -pi/2, 0, or +pi/2
}

// DragInterpreter turns 2D pointer motion over a grabbed cube face into a
// layer rotation. State machine: Idle -> Primed (hit) -> Resolving (moved)
// -> Active (threshold exceeded, axis/section locked) -> Idle (release).
type DragInterpreter struct {
	phase    dragPhase
	unitSize float32

	startX, startY float32
	hitPoint       rl.Vector3
	faceAxis       Axis    // axis of the grabbed face's normal
	faceSign       float32 // +1 or -1, sign of that normal

	axis    Axis
	section Section
	angle   float32 // accumulated signed rotation, radians
}

func NewDragInterpreter(unitSize float32) *DragInterpreter {
	return &DragInterpreter{unitSize: unitSize}
}

// Idle reports whether no drag session is in progress.
func (d *DragInterpreter) Idle() bool {
	return d.phase == dragIdle
}

// Active reports whether the session has resolved an axis and is
// tracking an angle.
func (d *DragInterpreter) Active() bool {
	return d.phase == dragActive
}

// Axis returns the resolved rotation axis of the active session.
func (d *DragInterpreter) Axis() Axis {
	if d.phase != dragActive {
		panic("cube: drag axis queried without an active session")
	}
	return d.axis
}

// Section returns the resolved layer section of the active session.
func (d *DragInterpreter) Section() Section {
	if d.phase != dragActive {
		panic("cube: drag section queried without an active session")
	}
	return d.section
}

// Angle returns the accumulated rotation of the active session.
func (d *DragInterpreter) Angle() float32 {
	if d.phase != dragActive {
		panic("cube: drag angle queried without an active session")
	}
	return d.angle
}

// Begin primes a session from a pointer press that hit the cube. The hit
// normal decides which face was grabbed; a normal that is not axis
// aligned (it always is for a box pick) falls back to its dominant
// component.
func (d *DragInterpreter) Begin(hit physics.RaycastHit, x, y float32) error {
	if d.phase != dragIdle {
		return ErrDragActive
	}
	d.phase = dragPrimed
	d.startX, d.startY = x, y
	d.hitPoint = hit.Point
	d.faceAxis, d.faceSign = dominantAxis(hit.Normal)
	d.angle = 0
	return nil
}

// Move feeds a pointer position. Below the commit threshold it is a
// no-op. The first sample past the threshold resolves the rotation axis
// and section; from then on each sample returns the angle change since
// the previous one, which the caller applies as a relative rotation.
func (d *DragInterpreter) Move(x, y, viewportW, viewportH float32) (delta float32, active bool) {
	switch d.phase {
	case dragIdle:
		return 0, false

	case dragPrimed, dragResolving:
		dx, dy := x-d.startX, y-d.startY
		if absf(dx) < DragThreshold && absf(dy) < DragThreshold {
			d.phase = dragResolving
			return 0, false
		}
		d.resolve(dx, dy)
		fallthrough

	case dragActive:
		next := d.trackedAngle(x, y, viewportW, viewportH)
		delta = next - d.angle
		d.angle = next
		return delta, true
	}
	return 0, false
}

// Release finishes the session, snapping the accumulated angle to the
// nearest of {-pi/2, 0, +pi/2}. The second return is false when the drag
// never went active (no rotation was applied, nothing to commit).
func (d *DragInterpreter) Release() (DragResult, bool) {
	defer d.reset()
	if d.phase != dragActive {
		return DragResult{}, false
	}
	residual := nearestClampDelta(d.angle)
	return DragResult{
		Axis:     d.axis,
		Section:  d.section,
		Residual: residual,
		Snapped:  d.angle + residual,
	}, true
}

// Cancel drops the session without committing anything.
func (d *DragInterpreter) Cancel() {
	d.reset()
}

func (d *DragInterpreter) reset() {
	*d = DragInterpreter{unitSize: d.unitSize}
}

// resolve locks in the rotation axis from the grabbed face and the
// dominant screen delta, and the section from the hit point's coordinate
// along that axis.
func (d *DragInterpreter) resolve(dx, dy float32) {
	horizontal := absf(dx) > absf(dy)
	switch d.faceAxis {
	case AxisX:
		if horizontal {
			d.axis = AxisY
		} else {
			d.axis = AxisZ
		}
	case AxisY:
		if horizontal {
			d.axis = AxisZ
		} else {
			d.axis = AxisX
		}
	case AxisZ:
		if horizontal {
			d.axis = AxisY
		} else {
			d.axis = AxisX
		}
	}
	d.section = SectionOf(d.axis.Component(d.hitPoint), d.unitSize)
	d.phase = dragActive
}

// trackedAngle recomputes the signed rotation from the total drag delta.
// The denominator is the remaining screen distance toward the edge the
// drag is heading for, so dragging all the way to the edge is a full
// quarter turn. Six face/axis pairings are valid; a face equal to the
// rotation axis is an internal invariant violation.
func (d *DragInterpreter) trackedAngle(x, y, viewportW, viewportH float32) float32 {
	dx, dy := x-d.startX, y-d.startY

	var delta, extent, start, sign float32
	switch {
	case d.faceAxis == AxisX && d.axis == AxisY:
		delta, extent, start, sign = dx, viewportW, d.startX, d.faceSign
	case d.faceAxis == AxisX && d.axis == AxisZ:
		delta, extent, start, sign = dy, viewportH, d.startY, -d.faceSign
	case d.faceAxis == AxisY && d.axis == AxisZ:
		delta, extent, start, sign = dx, viewportW, d.startX, -d.faceSign
	case d.faceAxis == AxisY && d.axis == AxisX:
		delta, extent, start, sign = dy, viewportH, d.startY, d.faceSign
	case d.faceAxis == AxisZ && d.axis == AxisY:
		delta, extent, start, sign = dx, viewportW, d.startX, d.faceSign
	case d.faceAxis == AxisZ && d.axis == AxisX:
		delta, extent, start, sign = dy, viewportH, d.startY, d.faceSign
	default:
		panic("cube: grabbed face equals rotation axis")
	}

	maxDelta := start
	if delta > 0 {
		maxDelta = extent - start
	}
	if maxDelta <= 0 {
		maxDelta = 1
	}

	return sign * clampf(delta/maxDelta*(rl.Pi/2), -rl.Pi/2, rl.Pi/2)
}

// nearestClampDelta returns the signed delta from angle to the nearest of
// {-pi/2, 0, +pi/2}.
func nearestClampDelta(angle float32) float32 {
	clamps := [3]float32{-rl.Pi / 2, 0, rl.Pi / 2}
	best := clamps[0] - angle
	for _, c := range clamps[1:] {
		if d := c - angle; absf(d) < absf(best) {
			best = d
		}
	}
	return best
}

// dominantAxis returns the axis and sign of the largest component of v.
func dominantAxis(v rl.Vector3) (Axis, float32) {
	ax, ay, az := absf(v.X), absf(v.Y), absf(v.Z)
	switch {
	case ax >= ay && ax >= az:
		return AxisX, signf(v.X)
	case ay >= az:
		return AxisY, signf(v.Y)
	default:
		return AxisZ, signf(v.Z)
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func signf(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
