package visual

// ring is a fixed-capacity buffer of amplitude samples with drop-oldest
// semantics: pushing into a full ring overwrites the oldest sample. It is
// not goroutine-safe on its own; the Visualizer guards it.
type ring struct {
	buf  []float64
	head int // index of the oldest sample
	size int // number of valid samples
}

// newRing creates a ring with the given capacity. Non-positive capacities
// fall back to DefaultCapacity.
func newRing(capacity int) *ring {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &ring{buf: make([]float64, capacity)}
}

// cap returns the fixed capacity.
func (r *ring) cap() int {
	return len(r.buf)
}

// len returns the number of buffered samples.
func (r *ring) len() int {
	return r.size
}

// push appends a sample, dropping the oldest if the ring is full.
func (r *ring) push(v float64) {
	if r.size < len(r.buf) {
		r.buf[(r.head+r.size)%len(r.buf)] = v
		r.size++
		return
	}
	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
}

// snapshot returns the buffered samples in arrival order, oldest first.
func (r *ring) snapshot() []float64 {
	out := make([]float64, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}
