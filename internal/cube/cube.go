// Package cube implements the layer-rotation engine for an interactive
// 3D Rubik's Cube: 27 rigid units, layer selection, drag interpretation,
// and time-driven quarter-turn animation with snap-to-grid.
package cube

import (
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rubik3d/internal/physics"
)

// DefaultShuffleTurns is the scramble length when none is given.
const DefaultShuffleTurns = 25

// Recorder receives every completed move, in order. Implemented by the
// history store; a nil recorder is fine.
type Recorder interface {
	RecordMove(m Move)
}

// queuedRotation is a pending rotation request. All rotations - layer,
// whole-cube, and drag snap residuals - are serialized through a single
// animation slot fed from this queue, so overlapping animations can never
// mutate the same units concurrently.
type queuedRotation struct {
	axis       Axis
	section    Section
	target     float32
	duration   float32
	wholeCube  bool
	move       *Move // recorded on completion when set
	onComplete func()
}

// Cube is the engine root: it owns the 27 units for their whole lifetime
// and composes the layer selector, drag interpreter, and animator. All
// state advances on Update, called once per display frame.
type Cube struct {
	units []*Unit
	cfg   *config
	rng   *rand.Rand

	drag      *DragInterpreter
	dragUnits []*Unit // layer cached for the active drag session
	dragPivot rl.Vector3

	anim  *animation
	queue []queuedRotation

	moves []Move

	// OnMove fires after each completed move animation.
	OnMove Event[Move]
}

// New creates a solved cube: 27 units on the {-1,0,1}^3 grid scaled by
// the unit size.
func New(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Cube{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		drag: NewDragInterpreter(cfg.unitSize),
	}

	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				home := rl.Vector3{
					X: float32(x) * cfg.unitSize,
					Y: float32(y) * cfg.unitSize,
					Z: float32(z) * cfg.unitSize,
				}
				c.units = append(c.units, NewUnit(home))
			}
		}
	}
	return c
}

// Units returns the 27 units. Callers may read positions and attach
// renderable handles but must not retain sub-slices across frames.
func (c *Cube) Units() []*Unit {
	return c.units
}

// UnitSize returns the configured edge length of one sub-cube.
func (c *Cube) UnitSize() float32 {
	return c.cfg.unitSize
}

// FaceColors returns the six sticker colors (see the Color* indices).
func (c *Cube) FaceColors() [6]rl.Color {
	return c.cfg.faceColors
}

// BorderColor returns the cube body color.
func (c *Cube) BorderColor() rl.Color {
	return c.cfg.borderColor
}

// Moves returns the moves applied so far, oldest first. Empty when move
// history is disabled.
func (c *Cube) Moves() []Move {
	return c.moves
}

// Busy reports whether a rotation is animating, queued, or being dragged.
func (c *Cube) Busy() bool {
	return c.anim != nil || len(c.queue) > 0 || !c.drag.Idle()
}

// Bounds returns the cube's overall bounding volume in world space.
func (c *Cube) Bounds() physics.AABB {
	points := make([]rl.Vector3, len(c.units))
	for i, u := range c.units {
		points[i] = u.Position
	}
	return physics.NewAABBFromPoints(points).Grow(c.cfg.unitSize / 2)
}

// SelectLayer resolves the units currently in the given layer.
func (c *Cube) SelectLayer(axis Axis, section Section) []*Unit {
	return SelectLayer(c.units, axis, section, c.cfg.unitSize)
}

// RotateLayer queues a quarter turn of one layer: +90 degrees about the
// axis for Clockwise, -90 for CounterClockwise. onComplete may be nil.
func (c *Cube) RotateLayer(axis Axis, section Section, dir Direction, duration float32, onComplete func()) error {
	if section < 0 || section > 2 {
		return ErrInvalidSection
	}
	move := MoveFor(axis, section, dir)
	c.queue = append(c.queue, queuedRotation{
		axis:       axis,
		section:    section,
		target:     dir.Angle(),
		duration:   duration,
		move:       &move,
		onComplete: onComplete,
	})
	return nil
}

// ApplyMove queues a notated move (R, U', F2, ...).
func (c *Cube) ApplyMove(m Move, duration float32) {
	axis, section, angle := m.Rotation()
	mv := m
	c.queue = append(c.queue, queuedRotation{
		axis:     axis,
		section:  section,
		target:   angle,
		duration: duration,
		move:     &mv,
	})
}

// RotateCube queues a whole-cube rotation. A request identical to the one
// currently animating is dropped, so holding a key does not pile up turns.
func (c *Cube) RotateCube(axis Axis, dir Direction, duration float32) {
	if a := c.anim; a != nil && a.wholeCube && a.axis == axis && sameSign(a.target, dir.Angle()) {
		return
	}
	c.queue = append(c.queue, queuedRotation{
		axis:      axis,
		target:    dir.Angle(),
		duration:  duration,
		wholeCube: true,
	})
}

// Shuffle queues a scramble of uniformly random quarter turns (axis,
// section, and direction all independent) and returns it in notation
// order. turns <= 0 uses DefaultShuffleTurns.
func (c *Cube) Shuffle(turns int) []Move {
	if turns <= 0 {
		turns = DefaultShuffleTurns
	}
	moves := make([]Move, 0, turns)
	for range turns {
		axis := Axis(c.rng.Intn(3))
		section := Section(c.rng.Intn(3))
		dir := Direction(c.rng.Intn(2))
		move := MoveFor(axis, section, dir)
		moves = append(moves, move)
		c.ApplyMove(move, c.cfg.shuffleStepTime)
	}
	return moves
}

// Update advances the engine by dt seconds: queue drain, then one
// animator tick. Must be called from a single goroutine; the engine is
// frame driven and does no locking.
func (c *Cube) Update(dt float32) {
	// Queued rotations wait for the drag session: a drag mutates its
	// layer directly and must not race an animation on the same units.
	if c.anim == nil && c.drag.Idle() && len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.start(next)
	}

	if c.anim != nil && c.anim.advance(dt) {
		done := c.anim
		c.anim = nil
		for _, u := range done.units {
			u.SnapToGrid(c.cfg.unitSize)
		}
		if done.move != nil {
			c.commitMove(*done.move)
		}
		if done.onComplete != nil {
			done.onComplete()
		}
	}
}

func (c *Cube) start(q queuedRotation) {
	units := c.units
	if !q.wholeCube {
		units = c.SelectLayer(q.axis, q.section)
		if len(units) == 0 {
			// Degenerate selection, nothing to rotate.
			if q.onComplete != nil {
				q.onComplete()
			}
			return
		}
	}
	c.anim = newAnimation(q.axis, units, q.target, q.duration, q.wholeCube, q.move, q.onComplete)
}

func (c *Cube) commitMove(m Move) {
	m.Time = time.Now()
	if c.cfg.moveHistory {
		c.moves = append(c.moves, m)
	}
	if c.cfg.recorder != nil {
		c.cfg.recorder.RecordMove(m)
	}
	c.OnMove.Invoke(m)
}

// BeginDrag primes a drag session from a pointer press that hit the
// cube's bounding volume. Refused while a rotation is in flight so the
// drag cannot fight the animator over unit positions.
func (c *Cube) BeginDrag(hit physics.RaycastHit, x, y float32) error {
	if c.anim != nil || len(c.queue) > 0 {
		return ErrDragActive
	}
	return c.drag.Begin(hit, x, y)
}

// DragMove feeds a pointer sample to the active drag session and applies
// the resulting angle change to the grabbed layer. The layer membership
// is resolved once, when the drag first goes active.
func (c *Cube) DragMove(x, y, viewportW, viewportH float32) {
	delta, active := c.drag.Move(x, y, viewportW, viewportH)
	if !active {
		return
	}
	if c.dragUnits == nil {
		c.dragUnits = c.SelectLayer(c.drag.Axis(), c.drag.Section())
		c.dragPivot = boundsCenter(c.dragUnits)
	}
	if delta == 0 || len(c.dragUnits) == 0 {
		return
	}
	axisVec := c.drag.Axis().Vector()
	for _, u := range c.dragUnits {
		u.RotateAround(axisVec, c.dragPivot, delta)
	}
}

// EndDrag releases the drag session. If it was active, the residual to
// the nearest quarter-turn boundary is animated on the same layer and a
// move is recorded when the snap lands on a non-zero turn.
func (c *Cube) EndDrag() {
	res, ok := c.drag.Release()
	c.dragUnits = nil
	if !ok {
		return
	}

	var move *Move
	if res.Snapped > rl.Pi/4 {
		m := MoveFor(res.Axis, res.Section, Clockwise)
		move = &m
	} else if res.Snapped < -rl.Pi/4 {
		m := MoveFor(res.Axis, res.Section, CounterClockwise)
		move = &m
	}

	c.queue = append([]queuedRotation{{
		axis:     res.Axis,
		section:  res.Section,
		target:   res.Residual,
		duration: c.cfg.snapDuration,
		move:     move,
	}}, c.queue...)
}

func sameSign(a, b float32) bool {
	return (a >= 0) == (b >= 0)
}
