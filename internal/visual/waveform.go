package visual

import "math"

// Synthetic waveform geometry: wavelength in cells and phase advance per
// tick.
const (
	waveformLength = 16.0
	waveformSpeed  = 0.3 // radians per tick
)

// Waveform renders a deterministic synthetic sine that travels with the
// tick count. It needs no external input, so it is usable standalone and
// testable by tick value alone.
type Waveform struct {
	width int
}

// NewWaveform creates a waveform of the given width in cells. Non-positive
// widths fall back to DefaultWidth.
func NewWaveform(width int) *Waveform {
	if width < 1 {
		width = DefaultWidth
	}
	return &Waveform{width: width}
}

// Width returns the render width in cells.
func (w *Waveform) Width() int {
	return w.width
}

// Samples returns the synthetic amplitudes for the given tick, one per
// column, in [-1, 1].
func (w *Waveform) Samples(tick int) []float64 {
	out := make([]float64, w.width)
	for x := range out {
		out[x] = math.Sin(2.0*math.Pi*float64(x)/waveformLength - float64(tick)*waveformSpeed)
	}
	return out
}

// Frame implements anim.Renderer. The frame is a pure function of the tick
// count, rendered with the wave style.
func (w *Waveform) Frame(tick int) string {
	return renderWave(w.Samples(tick), w.width)
}
