// Package visual renders amplitude sample streams in the terminal: a
// deterministic synthetic waveform usable standalone, and an audio-reactive
// visualizer fed by an external producer with runtime-switchable styles.
//
// Samples are real values in [-1, 1]; values outside that range are clamped
// at render time. Arrival cadence is unspecified: producers may push
// irregularly or in bursts, and the fixed-capacity ring buffer drops the
// oldest samples when full.
package visual

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
)

// ErrInvalidStyle is returned when an unrecognized style name is requested.
// The visualizer keeps its previous style.
var ErrInvalidStyle = errors.New("invalid visualizer style")

// Defaults for the sample buffer and render width.
const (
	DefaultCapacity = 256
	DefaultWidth    = 48
	DefaultStyle    = "bars"
)

// barGlyphs is the vertical block ramp used by all styles, lowest to highest.
var barGlyphs = []rune("▁▂▃▄▅▆▇█")

// styleFunc renders a snapshot of samples (oldest first) into a frame of
// the given width in cells.
type styleFunc func(samples []float64, width int) string

// styles is the closed registry of rendering styles.
var styles = map[string]styleFunc{
	"bars": renderBars,
	"wave": renderWave,
}

// Styles returns the available style names, sorted.
func Styles() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Visualizer consumes a live amplitude sample stream and renders it in the
// active style. Feeding and style switching are independent: SetStyle swaps
// the rendering function without pausing sample accumulation, and Feed never
// blocks on rendering beyond the shared mutex.
type Visualizer struct {
	width int

	mu     sync.Mutex
	style  string
	render styleFunc
	ring   *ring
}

// NewVisualizer creates a visualizer with the given buffer capacity, render
// width, and initial style. Non-positive capacity or width fall back to the
// defaults; an empty style selects DefaultStyle; an unrecognized style
// returns ErrInvalidStyle.
func NewVisualizer(capacity, width int, style string) (*Visualizer, error) {
	if width < 1 {
		width = DefaultWidth
	}
	if style == "" {
		style = DefaultStyle
	}
	render, ok := styles[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStyle, style)
	}

	return &Visualizer{
		width:  width,
		style:  style,
		render: render,
		ring:   newRing(capacity),
	}, nil
}

// Feed appends samples to the buffer, dropping the oldest when full. Safe
// to call from any goroutine, at any cadence.
func (v *Visualizer) Feed(samples ...float64) {
	v.mu.Lock()
	for _, s := range samples {
		v.ring.push(s)
	}
	v.mu.Unlock()
}

// SetStyle atomically swaps the active rendering style. The sampling path is
// untouched: buffered samples are preserved and Feed keeps working
// throughout. An unrecognized name returns ErrInvalidStyle and leaves the
// previous style active.
func (v *Visualizer) SetStyle(name string) error {
	render, ok := styles[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, name)
	}

	v.mu.Lock()
	v.style = name
	v.render = render
	v.mu.Unlock()
	return nil
}

// Style returns the active style name.
func (v *Visualizer) Style() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.style
}

// Len returns the number of buffered samples.
func (v *Visualizer) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ring.len()
}

// Capacity returns the fixed buffer capacity.
func (v *Visualizer) Capacity() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ring.cap()
}

// Frame implements anim.Renderer: it snapshots the buffer and renders it
// with the active style.
func (v *Visualizer) Frame(int) string {
	v.mu.Lock()
	samples := v.ring.snapshot()
	render := v.render
	v.mu.Unlock()

	return render(samples, v.width)
}

// glyphFor maps a unit value in [0, 1] onto the block ramp, clamping out-of
// range input.
func glyphFor(unit float64) rune {
	if unit < 0 {
		unit = 0
	}
	if unit > 1 {
		unit = 1
	}
	return barGlyphs[int(unit*float64(len(barGlyphs)-1))]
}

// renderBars buckets the whole buffer across the width and draws each
// bucket's peak magnitude as a column.
func renderBars(samples []float64, width int) string {
	var sb strings.Builder
	sb.Grow(width * 3)

	for x := 0; x < width; x++ {
		lo := x * len(samples) / width
		hi := (x + 1) * len(samples) / width

		peak := 0.0
		for _, s := range samples[lo:hi] {
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
		sb.WriteRune(glyphFor(peak))
	}
	return sb.String()
}

// renderWave draws the most recent width samples in arrival order, mapping
// each amplitude in [-1, 1] onto the ramp. Missing columns render flat.
func renderWave(samples []float64, width int) string {
	var sb strings.Builder
	sb.Grow(width * 3)

	pad := width - len(samples)
	for x := 0; x < width; x++ {
		if x < pad {
			sb.WriteRune(barGlyphs[len(barGlyphs)/2])
			continue
		}
		s := samples[len(samples)-width+x]
		sb.WriteRune(glyphFor((s + 1.0) / 2.0))
	}
	return sb.String()
}
