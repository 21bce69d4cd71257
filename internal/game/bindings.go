package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rubik3d/internal/cube"
)

// Action is a key handler. Bindings are looked up by raylib key code and
// fire once per key press.
type Action func(g *Game)

// faceAction turns the named face; holding shift reverses it.
func faceAction(face cube.Face) Action {
	return func(g *Game) {
		turn := cube.CW
		if shiftDown() {
			turn = cube.CCW
		}
		g.cube.ApplyMove(cube.Move{Face: face, Turn: turn}, turnDuration)
	}
}

func spinAction(axis cube.Axis, dir cube.Direction) Action {
	return func(g *Game) {
		g.cube.RotateCube(axis, dir, spinDuration)
	}
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

// DefaultBindings maps the standard face keys, arrow-key cube spins, the
// shuffle key, and fullscreen toggle.
func DefaultBindings() map[int32]Action {
	return map[int32]Action{
		rl.KeyR: faceAction(cube.FaceR),
		rl.KeyL: faceAction(cube.FaceL),
		rl.KeyU: faceAction(cube.FaceU),
		rl.KeyD: faceAction(cube.FaceD),
		rl.KeyF: faceAction(cube.FaceF),
		rl.KeyB: faceAction(cube.FaceB),
		rl.KeyM: faceAction(cube.FaceM),
		rl.KeyE: faceAction(cube.FaceE),

		rl.KeyLeft:  spinAction(cube.AxisY, cube.CounterClockwise),
		rl.KeyRight: spinAction(cube.AxisY, cube.Clockwise),
		rl.KeyUp:    spinAction(cube.AxisX, cube.Clockwise),
		rl.KeyDown:  spinAction(cube.AxisX, cube.CounterClockwise),

		rl.KeyS: func(g *Game) { g.cube.Shuffle(0) },

		rl.KeyF11: func(*Game) { rl.ToggleFullscreen() },
	}
}
