// Package game runs the interactive window: input, frame updates, and
// drawing, tying the cube engine to the scene.
package game

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rubik3d/internal/cube"
	"rubik3d/internal/physics"
	"rubik3d/internal/scene"
)

const (
	turnDuration = 0.2  // seconds per keyboard quarter turn
	spinDuration = 0.35 // seconds per whole-cube rotation
	pickDistance = 100
)

// Config carries window setup and the key bindings for a session.
type Config struct {
	Title     string
	Width     int32
	Height    int32
	TargetFPS int32
	Bindings  map[int32]Action
}

// DefaultConfig returns the standard window setup with DefaultBindings.
func DefaultConfig() Config {
	return Config{
		Title:     "rubik3d",
		Width:     1280,
		Height:    720,
		TargetFPS: 120,
		Bindings:  DefaultBindings(),
	}
}

// Game owns the run loop. Create one per process; raylib allows a single
// window.
type Game struct {
	cube  *cube.Cube
	scene *scene.Scene
	cfg   Config

	dragging bool
}

// New wires a game around an existing cube.
func New(c *cube.Cube, cfg Config) *Game {
	if cfg.Bindings == nil {
		cfg.Bindings = DefaultBindings()
	}
	return &Game{cube: c, cfg: cfg}
}

// Cube returns the engine driven by this game.
func (g *Game) Cube() *cube.Cube {
	return g.cube
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagWindowHighdpi)
	rl.InitWindow(g.cfg.Width, g.cfg.Height, g.cfg.Title)
	if !rl.IsWindowReady() {
		return errors.New("game: failed to create window")
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.cfg.TargetFPS)

	// Views attach to the units once the GL context exists.
	g.scene = scene.New(g.cube)

	for !rl.WindowShouldClose() {
		g.update()
		g.draw()
	}
	return nil
}

func (g *Game) update() {
	g.handleKeys()
	g.handleDrag()
	g.scene.Update()
	g.cube.Update(rl.GetFrameTime())
}

func (g *Game) handleKeys() {
	for key, action := range g.cfg.Bindings {
		if rl.IsKeyPressed(key) {
			action(g)
		}
	}
}

// handleDrag runs the pointer side of layer turning: press picks a face
// on the cube's bounding volume, movement feeds the drag, release snaps.
func (g *Game) handleDrag() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		origin, direction := g.scene.MouseRay()
		if hit, ok := physics.RaycastBox(origin, direction, g.cube.Bounds(), pickDistance); ok {
			pos := rl.GetMousePosition()
			if err := g.cube.BeginDrag(hit, pos.X, pos.Y); err == nil {
				g.dragging = true
			}
		}
	}

	if g.dragging && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		g.cube.DragMove(pos.X, pos.Y, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	}

	if g.dragging && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		g.cube.EndDrag()
		g.dragging = false
	}
}

func (g *Game) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 24, 30, 255))

	g.scene.Draw()

	if g.scene.DrawHUD().Shuffle {
		g.cube.Shuffle(0)
	}

	rl.EndDrawing()
}
