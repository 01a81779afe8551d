// Package anim provides the animation unit lifecycle and the built-in
// single-line renderers (spinner, progress bar, pulse, wave).
//
// The package separates frame computation (Renderer) from timing and
// output (Unit): renderers are pure-ish functions of the tick count, while
// the unit owns the goroutine, the ticker, and the cancellation signal, and
// routes every frame through the shared surface guard.
package anim

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"flicker/internal/ansi"
	"flicker/internal/surface"
)

// DefaultInterval is the frame interval used when none is configured
// (80ms, ~12.5 FPS).
const DefaultInterval = 80 * time.Millisecond

// stopGraceFactor bounds how long Stop waits for the tick loop to
// acknowledge cancellation, in multiples of the tick interval.
const stopGraceFactor = 5

// Renderer computes the frame for a given tick. Implementations control all
// visual aspects including glyph choice and color codes; the Unit handles
// timing, lifecycle, cursor management, and serialized output.
//
// Frame is called from the unit's tick goroutine only. Renderers whose state
// is mutated externally (e.g. a progress bar's current value) must guard
// that state themselves.
type Renderer interface {
	// Frame returns the rendered frame for the given tick count. Frames may
	// span multiple lines; the unit repositions the cursor between ticks so
	// successive frames overwrite in place.
	Frame(tick int) string
}

// Unit is one independently lifecycle-managed animation. It runs its own
// tick loop on a background goroutine and writes frames through the shared
// render surface.
type Unit struct {
	name     string
	kind     Kind
	interval time.Duration
	renderer Renderer
	surface  *surface.Surface
	log      zerolog.Logger

	mu        sync.Mutex
	state     State
	cancel    context.CancelFunc
	done      chan struct{}
	renderErr error
}

// NewUnit creates a unit in the Idle state. A non-positive interval falls
// back to DefaultInterval.
func NewUnit(name string, kind Kind, interval time.Duration, r Renderer, s *surface.Surface, log zerolog.Logger) *Unit {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Unit{
		name:     name,
		kind:     kind,
		interval: interval,
		renderer: r,
		surface:  s,
		log:      log.With().Str("animation", name).Stringer("kind", kind).Logger(),
	}
}

// Name returns the unit's registry name.
func (u *Unit) Name() string {
	return u.name
}

// Kind returns the animation variant this unit renders.
func (u *Unit) Kind() Kind {
	return u.kind
}

// Interval returns the tick interval.
func (u *Unit) Interval() time.Duration {
	return u.interval
}

// Renderer returns the unit's renderer, for kind-specific operations such
// as progress updates or visualizer style switches.
func (u *Unit) Renderer() Renderer {
	return u.renderer
}

// State returns the current lifecycle state.
func (u *Unit) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// Err returns the most recent render failure, if any. A failed write stops
// this unit's frame emission but never affects sibling units.
func (u *Unit) Err() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.renderErr
}

// Start begins the tick loop in a background goroutine. Valid from Idle or
// Stopped; calling Start while already running is a no-op.
func (u *Unit) Start() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state == Running || u.state == Stopping {
		return // already running
	}

	ctx, cancel := context.WithCancel(context.Background())
	u.cancel = cancel
	u.done = make(chan struct{})
	u.state = Running
	u.renderErr = nil

	go u.run(ctx, u.done)
}

// run is the tick loop goroutine. It hides the cursor and renders the
// initial frame, then renders one frame per tick until cancelled, at which
// point it erases the drawn region and restores the cursor.
func (u *Unit) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	tick := 0
	prevLines := 0
	failed := false

	emit := func(frame string) {
		composed, lines := composeFrame(frame, prevLines)
		if err := u.surface.WriteFrame(ansi.HideCursor + composed); err != nil {
			u.recordErr(err)
			failed = true
			return
		}
		prevLines = lines
	}

	emit(u.renderer.Frame(tick))

	for {
		select {
		case <-ctx.Done():
			if !failed {
				u.cleanup(prevLines)
			}
			return
		case <-ticker.C:
			if failed {
				continue // stop contributing frames, keep honoring cancellation
			}
			tick++
			emit(u.renderer.Frame(tick))
		}
	}
}

// composeFrame wraps a rendered frame with the cursor movements that make it
// overwrite the previous frame: return to column 0, move up over the prior
// frame's extra lines, and clear the remainder of each redrawn line. A frame
// shorter than its predecessor additionally clears the lines below it, so no
// stale content survives the shrink. It returns the composed output and the
// number of lines the new frame occupies.
func composeFrame(frame string, prevLines int) (string, int) {
	lines := strings.Count(frame, "\n") + 1

	var sb strings.Builder
	sb.WriteString(ansi.CarriageReturn)
	sb.WriteString(ansi.CursorUp(prevLines - 1))
	sb.WriteString(strings.ReplaceAll(frame, "\n", ansi.ClearLine+"\n"))
	sb.WriteString(ansi.ClearLine)
	if lines < prevLines {
		sb.WriteString(ansi.ClearBelow)
	}

	return sb.String(), lines
}

// cleanup erases the unit's drawn region, resets colors, and restores the
// cursor, leaving the surface as it was before Start.
func (u *Unit) cleanup(prevLines int) {
	out := ansi.CarriageReturn + ansi.CursorUp(prevLines-1) + ansi.ClearBelow +
		ansi.ResetColor + ansi.ShowCursor
	if err := u.surface.WriteFrame(out); err != nil {
		u.recordErr(err)
	}
}

// recordErr stores the first render failure and logs it.
func (u *Unit) recordErr(err error) {
	u.mu.Lock()
	if u.renderErr == nil {
		u.renderErr = err
	}
	u.mu.Unlock()
	u.log.Warn().Err(err).Msg("render write failed, unit stops emitting frames")
}

// Stop requests cancellation and blocks until the tick loop has exited and
// the surface has been left clean. If the loop fails to acknowledge within
// several tick intervals, a shutdown-timeout diagnostic is logged and the
// unit is marked Stopped anyway. Stop on an Idle or Stopped unit is a no-op.
// It returns the unit's recorded render failure, if any.
func (u *Unit) Stop() error {
	u.mu.Lock()
	if u.state != Running && u.state != Stopping {
		err := u.renderErr
		u.mu.Unlock()
		return err
	}
	cancel := u.cancel
	done := u.done
	u.state = Stopping
	u.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		select {
		case <-done:
		case <-time.After(stopGraceFactor * u.interval):
			u.log.Warn().Dur("waited", stopGraceFactor*u.interval).
				Msg("shutdown timeout: tick loop did not acknowledge cancellation")
		}
	}

	u.mu.Lock()
	u.state = Stopped
	u.cancel = nil
	u.done = nil
	err := u.renderErr
	u.mu.Unlock()
	return err
}
