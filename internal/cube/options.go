package cube

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Face color order for the six-color configuration tuple.
const (
	ColorRight = iota
	ColorLeft
	ColorUp
	ColorDown
	ColorFront
	ColorBack
)

// Option configures a Cube at construction time.
type Option func(*config)

type config struct {
	unitSize        float32
	faceColors      [6]rl.Color
	borderColor     rl.Color
	moveHistory     bool
	snapDuration    float32
	shuffleStepTime float32
	recorder        Recorder
	seed            int64
}

func defaultConfig() *config {
	return &config{
		unitSize: 1.0,
		faceColors: [6]rl.Color{
			ColorRight: rl.Red,
			ColorLeft:  rl.Orange,
			ColorUp:    rl.White,
			ColorDown:  rl.Yellow,
			ColorFront: rl.Green,
			ColorBack:  rl.Blue,
		},
		borderColor:     rl.Black,
		moveHistory:     true,
		snapDuration:    0.15,
		shuffleStepTime: 0.2,
	}
}

// WithUnitSize sets the edge length of one sub-cube. Layer classification
// thresholds scale with it.
func WithUnitSize(size float32) Option {
	return func(c *config) {
		if size > 0 {
			c.unitSize = size
		}
	}
}

// WithFaceColors sets the six sticker colors, ordered right, left, up,
// down, front, back.
func WithFaceColors(colors [6]rl.Color) Option {
	return func(c *config) {
		c.faceColors = colors
	}
}

// WithBorderColor sets the color of the cube body between stickers.
func WithBorderColor(color rl.Color) Option {
	return func(c *config) {
		c.borderColor = color
	}
}

// WithMoveHistory enables or disables in-memory move tracking. Enabled by
// default; disable for long-running sessions to bound memory.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithSnapDuration sets how long the release snap animation takes.
func WithSnapDuration(seconds float32) Option {
	return func(c *config) {
		c.snapDuration = seconds
	}
}

// WithShuffleStepTime sets the duration of each shuffle turn.
func WithShuffleStepTime(seconds float32) Option {
	return func(c *config) {
		c.shuffleStepTime = seconds
	}
}

// WithRecorder registers a recorder notified of every completed move.
func WithRecorder(r Recorder) Option {
	return func(c *config) {
		c.recorder = r
	}
}

// WithRandSeed seeds the shuffle generator for reproducible scrambles.
func WithRandSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}
