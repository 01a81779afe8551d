package anim

import (
	"math"
	"strings"
)

// waveGlyphs is the vertical block ramp used to render wave heights, from
// lowest to highest.
var waveGlyphs = []rune("▁▂▃▄▅▆▇█")

// Wave geometry: wavelength in cells and phase advance per tick.
const (
	waveDefaultWidth = 24
	waveLength       = 12.0
	waveSpeed        = 0.35 // radians per tick
)

// Wave renders a fixed-width horizontal wave of block glyphs that travels
// across the line as the tick count advances.
type Wave struct {
	label string
	width int
}

// NewWave creates a wave animation of the default width.
func NewWave(label string) *Wave {
	return &Wave{label: label, width: waveDefaultWidth}
}

// NewWaveWidth creates a wave animation with an explicit width in cells.
// Non-positive widths fall back to the default.
func NewWaveWidth(label string, width int) *Wave {
	if width < 1 {
		width = waveDefaultWidth
	}
	return &Wave{label: label, width: width}
}

// Width returns the wave width in cells.
func (w *Wave) Width() int {
	return w.width
}

// Frame implements Renderer. The frame is a pure function of the tick count:
// each column samples a sine at that column's position minus the traveling
// phase, mapped onto the block glyph ramp.
func (w *Wave) Frame(tick int) string {
	var sb strings.Builder
	sb.Grow(w.width * 3) // block glyphs are 3 bytes each in UTF-8

	for x := 0; x < w.width; x++ {
		phase := 2.0*math.Pi*float64(x)/waveLength - float64(tick)*waveSpeed
		unit := (math.Sin(phase) + 1.0) / 2.0
		idx := int(unit * float64(len(waveGlyphs)-1))
		sb.WriteRune(waveGlyphs[idx])
	}

	if w.label != "" {
		sb.WriteString(" ")
		sb.WriteString(w.label)
	}
	return sb.String()
}
