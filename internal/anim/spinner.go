package anim

import (
	"math"

	"flicker/internal/ansi"
)

// spinnerStyles maps style names to their cyclic glyph sequences.
var spinnerStyles = map[string][]string{
	"dots":   {"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	"line":   {"|", "/", "-", "\\"},
	"circle": {"◐", "◓", "◑", "◒"},
	"pulse":  {"●", "◉", "○", "◉"},
}

// DefaultSpinnerStyle is used when an unknown style name is requested.
const DefaultSpinnerStyle = "dots"

// SpinnerStyles returns the names of the available spinner styles.
func SpinnerStyles() []string {
	names := make([]string, 0, len(spinnerStyles))
	for name := range spinnerStyles {
		names = append(names, name)
	}
	return names
}

// Phase shifts for RGB color cycling, evenly distributed over 2π radians.
// This creates a smooth rainbow effect as the phase advances.
const (
	redPhase   = 0.0                 // 0 degrees
	greenPhase = 2.0 * math.Pi / 3.0 // 120 degrees
	bluePhase  = 4.0 * math.Pi / 3.0 // 240 degrees
)

// colorCycleFrames is the number of ticks for one full rainbow cycle
// (~3 seconds at the default 80ms interval).
const colorCycleFrames = 37.5

// Spinner cycles through a finite glyph sequence, one glyph per tick, with
// rainbow color cycling. Renders as "{glyph} {label}".
type Spinner struct {
	label     string
	frames    []string
	trueColor bool
}

// NewSpinner creates a spinner with the given label and style. Unknown
// style names fall back to DefaultSpinnerStyle.
func NewSpinner(label, style string) *Spinner {
	frames, ok := spinnerStyles[style]
	if !ok {
		frames = spinnerStyles[DefaultSpinnerStyle]
	}
	return &Spinner{
		label:     label,
		frames:    frames,
		trueColor: ansi.SupportsTrueColor(),
	}
}

// FrameCount returns the number of glyphs in one complete cycle.
func (s *Spinner) FrameCount() int {
	return len(s.frames)
}

// Frame implements Renderer. The glyph advances modulo the sequence length
// and the color phase advances a fixed increment per tick, so the frame is
// a pure function of the tick count.
func (s *Spinner) Frame(tick int) string {
	glyph := s.frames[tick%len(s.frames)]
	phase := 2.0 * math.Pi * float64(tick) / colorCycleFrames
	r, g, b := rainbowRGB(phase)

	out := ansi.ColorCode(r, g, b, s.trueColor) + glyph + ansi.ResetColor
	if s.label != "" {
		out += " " + s.label
	}
	return out
}

// rainbowRGB calculates RGB values (0-255) using phase-shifted sine waves.
// Each color component is offset by 120° to create smooth rainbow transitions.
func rainbowRGB(phase float64) (r, g, b int) {
	// sin(x) ∈ [-1,1] → (sin(x)+1)/2 ∈ [0,1] → scaled to [0,255]
	r = int((math.Sin(phase+redPhase) + 1.0) / 2.0 * 255.0)
	g = int((math.Sin(phase+greenPhase) + 1.0) / 2.0 * 255.0)
	b = int((math.Sin(phase+bluePhase) + 1.0) / 2.0 * 255.0)
	return r, g, b
}
