// Package geometry renders parametrized shapes whose pose advances
// deterministically with the tick count. Rendering is a pure function of
// (shape, phase), which makes every animation trivially restartable and
// testable by phase value alone.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"flicker/internal/canvas"
)

// ErrUnknownShape is returned when a shape name cannot be parsed.
var ErrUnknownShape = errors.New("unknown shape")

// Shape identifies a renderable shape.
type Shape int

const (
	// Circle is an outline with a rotating spoke from the center to the rim.
	Circle Shape = iota
	// Diamond is an outline that breathes between 60% and 100% of its extent.
	Diamond
)

// String returns the lowercase name of the shape.
func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Diamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// ParseShape converts a shape name to its Shape value.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "circle":
		return Circle, nil
	case "diamond":
		return Diamond, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// Canvas dimensions in braille pixels: 24x24 renders as 12 characters by
// 6 rows.
const (
	canvasSize = 24
	radius     = 10.0
)

// phaseIncrement is the pose advance per tick: one full rotation every 48
// ticks (~4 seconds at the default 80ms interval).
const phaseIncrement = 2.0 * math.Pi / 48.0

// Animation renders a shape whose phase advances a fixed increment per
// tick, wrapping modulo 2π. It holds no state beyond the shape itself.
type Animation struct {
	shape Shape
}

// New creates an animation for the given shape.
func New(shape Shape) *Animation {
	return &Animation{shape: shape}
}

// Shape returns the rendered shape.
func (a *Animation) Shape() Shape {
	return a.shape
}

// Phase returns the pose phase for the given tick, wrapped into [0, 2π).
func Phase(tick int) float64 {
	return math.Mod(float64(tick)*phaseIncrement, 2.0*math.Pi)
}

// Frame implements anim.Renderer.
func (a *Animation) Frame(tick int) string {
	return Render(a.shape, Phase(tick))
}

// Render draws the shape at the given phase onto a fresh braille canvas.
// It is a pure function: the same (shape, phase) always yields the same
// frame.
func Render(shape Shape, phase float64) string {
	c := canvas.New(canvasSize, canvasSize)
	cx, cy := float64(canvasSize)/2, float64(canvasSize)/2

	switch shape {
	case Circle:
		renderCircle(c, cx, cy, phase)
	case Diamond:
		renderDiamond(c, cx, cy, phase)
	}

	return c.String()
}

// outlineSteps is the number of samples used to trace a shape outline.
// Enough to leave no pixel gaps at the canvas size above.
const outlineSteps = 96

// renderCircle traces the circle outline and a rotating spoke at the phase
// angle.
func renderCircle(c *canvas.Canvas, cx, cy, phase float64) {
	for i := 0; i < outlineSteps; i++ {
		theta := 2.0 * math.Pi * float64(i) / outlineSteps
		c.Set(int(cx+radius*math.Cos(theta)), int(cy+radius*math.Sin(theta)))
	}

	// Spoke from center to rim at the current rotation angle.
	for r := 0.0; r <= radius; r += 0.5 {
		c.Set(int(cx+r*math.Cos(phase)), int(cy+r*math.Sin(phase)))
	}
}

// renderDiamond traces a diamond outline whose extent breathes with the
// phase, between 60% and 100% of the full radius.
func renderDiamond(c *canvas.Canvas, cx, cy, phase float64) {
	scale := 0.6 + 0.4*(math.Sin(phase)+1.0)/2.0
	extent := radius * scale

	for i := 0; i < outlineSteps; i++ {
		theta := 2.0 * math.Pi * float64(i) / outlineSteps
		// |x| + |y| = extent, sampled by angle
		denom := math.Abs(math.Cos(theta)) + math.Abs(math.Sin(theta))
		r := extent / denom
		c.Set(int(cx+r*math.Cos(theta)), int(cy+r*math.Sin(theta)))
	}
}
