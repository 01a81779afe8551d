package anim

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// Glyphs for filled and empty progress bar segments.
const (
	progressFilled = "█"
	progressEmpty  = "░"
)

// ProgressBar renders a caller-driven progress bar. The current value is set
// via Update and never self-advances; the tick loop only re-renders the
// latest value. Rendering is deterministic: filled segments =
// round(width * current/total).
type ProgressBar struct {
	total int
	width int
	label string

	mu      sync.Mutex
	current int
}

// NewProgressBar creates a progress bar. Non-positive total or width are
// raised to 1.
func NewProgressBar(total, width int, label string) *ProgressBar {
	if total < 1 {
		total = 1
	}
	if width < 1 {
		width = 1
	}
	return &ProgressBar{
		total: total,
		width: width,
		label: label,
	}
}

// Update sets the current value, clamped into [0, total]. Safe to call from
// any goroutine.
func (p *ProgressBar) Update(current int) {
	if current < 0 {
		current = 0
	}
	if current > p.total {
		current = p.total
	}

	p.mu.Lock()
	p.current = current
	p.mu.Unlock()
}

// Current returns the last value set by Update, after clamping.
func (p *ProgressBar) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Filled returns the number of filled segments for the current value.
func (p *ProgressBar) Filled() int {
	cur := p.Current()
	return int(math.Round(float64(p.width) * float64(cur) / float64(p.total)))
}

// Frame implements Renderer.
func (p *ProgressBar) Frame(int) string {
	cur := p.Current()
	filled := p.Filled()

	bar := strings.Repeat(progressFilled, filled) + strings.Repeat(progressEmpty, p.width-filled)
	pct := 100 * cur / p.total

	out := fmt.Sprintf("[%s] %3d%%", bar, pct)
	if p.label != "" {
		out += " " + p.label
	}
	return out
}
