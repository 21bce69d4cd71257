// Package scene renders the cube with raylib and owns the camera and HUD.
package scene

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"rubik3d/internal/cube"
)

// Scene owns the render side of a cube: one view per unit, the orbit
// camera, and the HUD. It holds no game logic.
type Scene struct {
	cube   *cube.Cube
	Camera *OrbitCamera
	views  []*UnitView
}

// New builds views for every unit and attaches them as render handles.
func New(c *cube.Cube) *Scene {
	s := &Scene{
		cube:   c,
		Camera: NewOrbitCamera(rl.Vector3{}, c.UnitSize()*8),
	}
	colors := c.FaceColors()
	for _, u := range c.Units() {
		s.views = append(s.views, NewUnitView(u, c.UnitSize(), colors, c.BorderColor()))
	}
	applyHUDStyle()
	return s
}

func applyHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(rl.NewColor(28, 28, 36, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(45, 45, 58, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(60, 60, 78, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(rl.NewColor(90, 120, 220, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(200, 200, 210, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(70, 70, 88, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
}

// Update applies one frame of camera input.
func (s *Scene) Update() {
	s.Camera.Update()
}

// MouseRay returns the picking ray under the cursor for the current
// camera.
func (s *Scene) MouseRay() (origin, direction rl.Vector3) {
	ray := rl.GetMouseRay(rl.GetMousePosition(), s.Camera.Camera())
	return ray.Position, ray.Direction
}

// Draw renders the 3D view. Must be called between BeginDrawing and
// EndDrawing.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera.Camera())
	for _, v := range s.views {
		v.Draw()
	}
	rl.EndMode3D()
}

// HUDActions reports which HUD controls were activated this frame.
type HUDActions struct {
	Shuffle bool
}

// DrawHUD renders the overlay and returns the controls hit this frame.
func (s *Scene) DrawHUD() HUDActions {
	var actions HUDActions

	rl.DrawText("Drag a face to turn a layer, right mouse to orbit, wheel to zoom", 10, 10, 18, rl.DarkGray)
	rl.DrawText("R L U D F B to turn (shift for reverse), arrows to rotate, S to shuffle", 10, 32, 18, rl.DarkGray)
	rl.DrawFPS(10, int32(rl.GetScreenHeight()-26))

	if gui.Button(rl.NewRectangle(10, 60, 110, 32), "Shuffle") {
		actions.Shuffle = true
	}
	rl.DrawText(fmt.Sprintf("Moves: %d", len(s.cube.Moves())), 134, 68, 18, rl.RayWhite)

	return actions
}
