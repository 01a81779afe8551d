package anim

import (
	"math"

	"flicker/internal/ansi"
)

// Pulse brightness envelope bounds (0-255 gray levels). The floor keeps the
// label legible at the dim end of the cycle.
const (
	pulseMinLevel = 64
	pulseMaxLevel = 255
)

// pulsePeriod is the number of ticks for one full brightness cycle
// (~2 seconds at the default 80ms interval).
const pulsePeriod = 24

// Pulse renders its label with a sinusoidal brightness envelope: the text
// fades between dim and bright gray with a fixed period.
type Pulse struct {
	label     string
	trueColor bool
}

// NewPulse creates a pulse animation for the given label.
func NewPulse(label string) *Pulse {
	return &Pulse{
		label:     label,
		trueColor: ansi.SupportsTrueColor(),
	}
}

// Level returns the brightness level (0-255) for the given tick.
func (p *Pulse) Level(tick int) int {
	phase := 2.0 * math.Pi * float64(tick) / pulsePeriod
	// sin(x) ∈ [-1,1] → [0,1] → scaled into [min, max]
	unit := (math.Sin(phase) + 1.0) / 2.0
	return pulseMinLevel + int(unit*float64(pulseMaxLevel-pulseMinLevel))
}

// Frame implements Renderer.
func (p *Pulse) Frame(tick int) string {
	return ansi.GrayCode(p.Level(tick), p.trueColor) + p.label + ansi.ResetColor
}
