package cube

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rubik3d/internal/physics"
)

func frontFaceHit(point rl.Vector3) physics.RaycastHit {
	return physics.RaycastHit{Point: point, Normal: rl.Vector3{Z: 1}}
}

func TestDragBelowThresholdIsNoOp(t *testing.T) {
	d := NewDragInterpreter(1.0)
	if err := d.Begin(frontFaceHit(rl.Vector3{Z: 1.5}), 400, 300); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	delta, active := d.Move(405, 304, 800, 600)
	if active || delta != 0 {
		t.Errorf("movement under threshold should not activate (delta=%v active=%v)", delta, active)
	}
	if d.Active() {
		t.Error("interpreter should not be active")
	}

	if _, ok := d.Release(); ok {
		t.Error("releasing an unresolved drag should not commit")
	}
	if !d.Idle() {
		t.Error("interpreter should be idle after release")
	}
}

func TestDragAxisResolution(t *testing.T) {
	cases := []struct {
		name     string
		normal   rl.Vector3
		dx, dy   float32
		wantAxis Axis
	}{
		{"x face, horizontal drag", rl.Vector3{X: 1}, 50, 5, AxisY},
		{"x face, vertical drag", rl.Vector3{X: 1}, 5, 50, AxisZ},
		{"y face, horizontal drag", rl.Vector3{Y: 1}, 50, 5, AxisZ},
		{"y face, vertical drag", rl.Vector3{Y: 1}, 5, 50, AxisX},
		{"z face, horizontal drag", rl.Vector3{Z: 1}, 50, 5, AxisY},
		{"z face, vertical drag", rl.Vector3{Z: 1}, 5, 50, AxisX},
	}
	for _, tc := range cases {
		d := NewDragInterpreter(1.0)
		hit := physics.RaycastHit{Point: rl.Vector3{}, Normal: tc.normal}
		if err := d.Begin(hit, 400, 300); err != nil {
			t.Fatalf("%s: Begin: %v", tc.name, err)
		}
		if _, active := d.Move(400+tc.dx, 300+tc.dy, 800, 600); !active {
			t.Fatalf("%s: drag should be active", tc.name)
		}
		if d.Axis() != tc.wantAxis {
			t.Errorf("%s: expected axis %v, got %v", tc.name, tc.wantAxis, d.Axis())
		}
	}
}

func TestDragSectionFromHitPoint(t *testing.T) {
	d := NewDragInterpreter(1.0)
	// Front face hit near the top: vertical drag rotates about x, and the
	// hit's x coordinate selects the section.
	hit := frontFaceHit(rl.Vector3{X: -1, Y: 0.2, Z: 1.5})
	if err := d.Begin(hit, 400, 300); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, active := d.Move(400, 360, 800, 600); !active {
		t.Fatal("drag should be active")
	}
	if d.Axis() != AxisX {
		t.Fatalf("expected axis x, got %v", d.Axis())
	}
	if d.Section() != 0 {
		t.Errorf("hit at x=-1 should select section 0, got %d", d.Section())
	}
}

func TestDragAngleFromScreenDelta(t *testing.T) {
	d := NewDragInterpreter(1.0)
	if err := d.Begin(frontFaceHit(rl.Vector3{Z: 1.5}), 400, 300); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// Start at x=400 in an 800-wide viewport: 400px of travel to the right
	// edge. Dragging 200px right is half the distance, so a quarter of pi.
	delta, active := d.Move(600, 300, 800, 600)
	if !active {
		t.Fatal("drag should be active")
	}
	want := float32(math.Pi / 4)
	if absf(delta-want) > 1e-4 {
		t.Errorf("expected delta %v, got %v", want, delta)
	}
	if absf(d.Angle()-want) > 1e-4 {
		t.Errorf("expected angle %v, got %v", want, d.Angle())
	}

	// Dragging back to the start retracts the angle to zero.
	d.Move(400, 300, 800, 600)
	if absf(d.Angle()) > 1e-4 {
		t.Errorf("angle should retract to 0, got %v", d.Angle())
	}
}

func TestDragAngleClamped(t *testing.T) {
	d := NewDragInterpreter(1.0)
	if err := d.Begin(frontFaceHit(rl.Vector3{Z: 1.5}), 700, 300); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// Only 100px to the right edge; dragging past it clamps at a quarter
	// turn even though delta/maxDelta exceeds 1.
	d.Move(799, 300, 800, 600)
	d.Move(799, 300, 800, 600)
	if got := d.Angle(); got > rl.Pi/2+1e-4 {
		t.Errorf("angle should clamp at pi/2, got %v", got)
	}
}

func TestDragReleaseSnaps(t *testing.T) {
	d := NewDragInterpreter(1.0)
	if err := d.Begin(frontFaceHit(rl.Vector3{Z: 1.5}), 400, 300); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	d.Move(600, 300, 800, 600) // pi/4, nearer to pi/2 than to 0... exactly between

	res, ok := d.Release()
	if !ok {
		t.Fatal("active drag should commit on release")
	}
	if absf(res.Residual-(res.Snapped-float32(math.Pi/4))) > 1e-4 {
		t.Errorf("residual %v does not reach snapped %v from pi/4", res.Residual, res.Snapped)
	}
	snapped := float64(res.Snapped)
	if snapped != 0 && absf(res.Snapped-rl.Pi/2) > 1e-4 && absf(res.Snapped+rl.Pi/2) > 1e-4 {
		t.Errorf("snapped angle %v is not a quarter-turn boundary", snapped)
	}
	if !d.Idle() {
		t.Error("interpreter should be idle after release")
	}
}

func TestNearestClampDelta(t *testing.T) {
	halfPi := float32(math.Pi / 2)
	cases := []struct {
		angle float32
		want  float32
	}{
		{-1.6, -halfPi + 1.6},
		{-0.2, 0.2},
		{0.1, -0.1},
		{1.4, halfPi - 1.4},
	}
	for _, tc := range cases {
		if got := nearestClampDelta(tc.angle); absf(got-tc.want) > 1e-5 {
			t.Errorf("nearestClampDelta(%v): expected %v, got %v", tc.angle, tc.want, got)
		}
	}
}

func TestDragAngleQueryWithoutSessionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when querying angle with no active session")
		}
	}()
	d := NewDragInterpreter(1.0)
	d.Angle()
}

func TestDragFaceEqualsAxisPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when grabbed face equals rotation axis")
		}
	}()
	d := NewDragInterpreter(1.0)
	d.phase = dragActive
	d.faceAxis = AxisY
	d.axis = AxisY
	d.faceSign = 1
	d.trackedAngle(500, 300, 800, 600)
}

func TestDragBeginWhileActiveFails(t *testing.T) {
	d := NewDragInterpreter(1.0)
	if err := d.Begin(frontFaceHit(rl.Vector3{Z: 1.5}), 400, 300); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := d.Begin(frontFaceHit(rl.Vector3{Z: 1.5}), 100, 100); err == nil {
		t.Error("second Begin should fail while a session is open")
	}
}
