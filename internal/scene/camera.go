package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a fixed target. Yaw and pitch are driven by the
// right mouse button, distance by the wheel.
type OrbitCamera struct {
	Target   rl.Vector3
	Yaw      float32 // degrees
	Pitch    float32 // degrees
	Distance float32

	LookSpeed   float32
	ZoomSpeed   float32
	MinDistance float32
	MaxDistance float32
}

// NewOrbitCamera creates a camera at a three-quarter view of the target.
func NewOrbitCamera(target rl.Vector3, distance float32) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Yaw:         -45,
		Pitch:       -30,
		Distance:    distance,
		LookSpeed:   0.25,
		ZoomSpeed:   0.8,
		MinDistance: distance * 0.4,
		MaxDistance: distance * 3,
	}
}

// Update applies one frame of mouse input.
func (c *OrbitCamera) Update() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		c.Yaw += delta.X * c.LookSpeed
		c.Pitch -= delta.Y * c.LookSpeed
	}

	// Clamp pitch short of the poles so the up vector stays valid
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}

	c.Distance -= rl.GetMouseWheelMove() * c.ZoomSpeed
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Position returns the camera's world position for the current orbit.
func (c *OrbitCamera) Position() rl.Vector3 {
	rot := mgl32.AnglesToQuat(
		mgl32.DegToRad(c.Pitch),
		mgl32.DegToRad(-c.Yaw),
		0,
		mgl32.XYZ,
	)
	offset := rot.Rotate(mgl32.Vec3{0, 0, c.Distance})
	return rl.Vector3{
		X: c.Target.X + offset.X(),
		Y: c.Target.Y + offset.Y(),
		Z: c.Target.Z + offset.Z(),
	}
}

// Camera returns the raylib camera for the current orbit.
func (c *OrbitCamera) Camera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
