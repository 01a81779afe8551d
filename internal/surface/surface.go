// Package surface serializes writes to the shared render sink. Every
// animation unit in a process writes its frames through one Surface, so
// output from concurrently ticking units interleaves at whole-frame
// granularity only, never mid-frame.
package surface

import (
	"fmt"
	"io"
	"sync"
)

// Surface guards a shared output sink. All writes go through WriteFrame or
// Exclusive, which hold an internal mutex for the duration of a single
// frame's output. Renderers compute frames before the lock is taken, so the
// lock is held only while bytes are emitted.
type Surface struct {
	mu sync.Mutex
	w  io.Writer
}

// New creates a Surface writing to w.
func New(w io.Writer) *Surface {
	return &Surface{w: w}
}

// WriteFrame emits one complete frame atomically with respect to all other
// writers sharing this Surface. A write error is returned to the caller
// only; the Surface remains usable by other units.
func (s *Surface) WriteFrame(frame string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.w, frame); err != nil {
		return fmt.Errorf("render surface write failed: %w", err)
	}
	return nil
}

// Exclusive runs fn with exclusive access to the sink. The writer handed to
// fn is the already-held sink, so fn (and anything it calls) writes directly
// without re-acquiring the lock; nested render paths therefore cannot
// deadlock. fn must not retain the writer after returning.
func (s *Surface) Exclusive(fn func(w io.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.w); err != nil {
		return fmt.Errorf("render surface write failed: %w", err)
	}
	return nil
}
