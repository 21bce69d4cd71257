package cube

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestEaseInOutCubicBoundaries(t *testing.T) {
	cases := []struct {
		t, want float32
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	}
	for _, tc := range cases {
		if got := easeInOutCubic(tc.t); absf(got-tc.want) > 1e-5 {
			t.Errorf("easeInOutCubic(%v): expected %v, got %v", tc.t, tc.want, got)
		}
	}
}

func TestEaseInOutCubicMonotonic(t *testing.T) {
	prev := float32(0)
	for i := 1; i <= 100; i++ {
		cur := easeInOutCubic(float32(i) / 100)
		if cur < prev {
			t.Fatalf("curve decreased at t=%v: %v < %v", float32(i)/100, cur, prev)
		}
		prev = cur
	}
}

func TestAnimationZeroDurationCompletesFirstTick(t *testing.T) {
	u := NewUnit(rl.Vector3{X: 1})
	a := newAnimation(AxisY, []*Unit{u}, rl.Pi/2, 0, false, nil, nil)

	if !a.advance(1.0 / 60.0) {
		t.Fatal("zero-duration animation should complete on the first tick")
	}
	// +90 degrees about y maps (1, 0, 0) to (0, 0, -1).
	want := rl.Vector3{Z: -1}
	if !nearlyEqual(u.Position, want) {
		t.Errorf("expected %v, got %v", want, u.Position)
	}
}

func TestAnimationDeltasSumToTarget(t *testing.T) {
	u := NewUnit(rl.Vector3{X: 1})
	a := newAnimation(AxisY, []*Unit{u}, rl.Pi/2, 0.3, false, nil, nil)

	done := false
	for i := 0; i < 100 && !done; i++ {
		done = a.advance(1.0 / 60.0)
	}
	if !done {
		t.Fatal("animation never completed")
	}
	if absf(a.lastApplied-rl.Pi/2) > 1e-4 {
		t.Errorf("applied angle %v, expected %v", a.lastApplied, rl.Pi/2)
	}
	want := rl.Vector3{Z: -1}
	if !nearlyEqual(u.Position, want) {
		t.Errorf("expected %v, got %v", want, u.Position)
	}
}

func TestAnimationMidpointIsHalfway(t *testing.T) {
	u := NewUnit(rl.Vector3{X: 1})
	a := newAnimation(AxisY, []*Unit{u}, rl.Pi/2, 1.0, false, nil, nil)

	if a.advance(0.5) {
		t.Fatal("animation should not be done at the midpoint")
	}
	// The curve passes through 0.5 at t=0.5, so the unit sits at 45 degrees.
	half := float32(math.Pi / 4)
	want := rl.Vector3{
		X: float32(math.Cos(float64(half))),
		Z: -float32(math.Sin(float64(half))),
	}
	if !nearlyEqual(u.Position, want) {
		t.Errorf("expected %v at the midpoint, got %v", want, u.Position)
	}
}

func TestAnimationPivotIsLayerCenter(t *testing.T) {
	// A face layer off the origin rotates about its own center, not the
	// world origin: the center unit of the layer must stay put.
	c := New()
	center := func() *Unit {
		for _, u := range c.Units() {
			if nearlyEqual(u.Home, rl.Vector3{X: 1}) {
				return u
			}
		}
		return nil
	}()
	if center == nil {
		t.Fatal("missing unit at (1, 0, 0)")
	}

	c.RotateLayer(AxisX, 2, Clockwise, 0, nil)
	pump(c, 1)

	if !nearlyEqual(center.Position, rl.Vector3{X: 1}) {
		t.Errorf("layer center drifted to %v", center.Position)
	}
}

func TestSnapToGridCancelsDrift(t *testing.T) {
	u := NewUnit(rl.Vector3{X: 1, Y: -1, Z: 0})
	u.Position = rl.Vector3{X: 0.9999, Y: -1.0002, Z: 0.0001}
	u.SnapToGrid(1.0)
	want := rl.Vector3{X: 1, Y: -1, Z: 0}
	if u.Position != want {
		t.Errorf("expected %v, got %v", want, u.Position)
	}
}

type recordingHandle struct {
	position    rl.Vector3
	orientation rl.Matrix
	calls       int
}

func (h *recordingHandle) SetTransform(position rl.Vector3, orientation rl.Matrix) {
	h.position = position
	h.orientation = orientation
	h.calls++
}

func TestUnitPushesTransformToHandle(t *testing.T) {
	u := NewUnit(rl.Vector3{X: 1})
	h := &recordingHandle{}
	u.Handle = h

	u.RotateAround(rl.Vector3{Y: 1}, rl.Vector3{}, rl.Pi/2)
	if h.calls != 1 {
		t.Fatalf("expected 1 transform push, got %d", h.calls)
	}
	if !nearlyEqual(h.position, rl.Vector3{Z: -1}) {
		t.Errorf("handle got position %v", h.position)
	}

	u.SnapToGrid(1.0)
	if h.calls != 2 {
		t.Errorf("snap should push the transform, calls=%d", h.calls)
	}
}
