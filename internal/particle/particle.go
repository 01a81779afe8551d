// Package particle simulates a fixed population of 2-D particles and renders
// them onto a character-cell grid. The population size is an invariant:
// particles that leave the bounds or exceed their maximum age are respawned
// in place, never removed.
package particle

import (
	"math/rand/v2"
	"sync"

	"flicker/internal/canvas"
)

// Default simulation parameters, used when the caller passes zero values.
const (
	DefaultWidth  = 80
	DefaultHeight = 20
	DefaultMaxAge = 60 // ticks before a particle is respawned
)

// maxSpeed is the largest velocity component magnitude, in cells per tick.
const maxSpeed = 0.8

// ageGlyphs maps a particle's relative age to its glyph, young to old.
var ageGlyphs = []rune{'●', '•', '·'}

// Particle is one simulated point with continuous position and velocity.
// Positions are in cell coordinates; the integer projection onto the grid
// happens only at render time.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    int
}

// System simulates count particles within a bounded region.
//
// Step and Frame are called from the owning unit's tick goroutine; Snapshot
// may be called from other goroutines (tests, diagnostics), so the particle
// slice is guarded.
type System struct {
	count  int
	width  int
	height int
	maxAge int
	rng    *rand.Rand
	grid   *canvas.Grid

	mu        sync.Mutex
	particles []Particle
}

// NewSystem creates a system of exactly count particles with pseudo-random
// initial positions and velocities. Zero or negative width, height, or
// maxAge fall back to the package defaults. A negative count is treated
// as zero.
func NewSystem(count, width, height, maxAge int) *System {
	if count < 0 {
		count = 0
	}
	if width < 1 {
		width = DefaultWidth
	}
	if height < 1 {
		height = DefaultHeight
	}
	if maxAge < 1 {
		maxAge = DefaultMaxAge
	}

	s := &System{
		count:     count,
		width:     width,
		height:    height,
		maxAge:    maxAge,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		particles: make([]Particle, count),
	}
	for i := range s.particles {
		s.respawn(&s.particles[i])
	}
	return s
}

// Count returns the fixed population size.
func (s *System) Count() int {
	return s.count
}

// Bounds returns the simulation region in cells.
func (s *System) Bounds() (width, height int) {
	return s.width, s.height
}

// Snapshot returns a copy of the current particle population.
func (s *System) Snapshot() []Particle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// respawn re-randomizes a particle's position and velocity and resets its
// age. Used both for initial placement and for recycling.
func (s *System) respawn(p *Particle) {
	p.X = s.rng.Float64() * float64(s.width)
	p.Y = s.rng.Float64() * float64(s.height)
	p.VX = (s.rng.Float64()*2 - 1) * maxSpeed
	p.VY = (s.rng.Float64()*2 - 1) * maxSpeed
	p.Age = 0
}

// Step advances every particle by one tick: position moves by velocity, age
// increments, and any particle that exits the bounds or exceeds the maximum
// age is respawned in place so the population size never changes.
func (s *System) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.particles {
		p := &s.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.Age++

		if p.X < 0 || p.X >= float64(s.width) || p.Y < 0 || p.Y >= float64(s.height) || p.Age > s.maxAge {
			s.respawn(p)
		}
	}
}

// render projects the population onto the grid. Overlapping particles
// resolve last-write-wins for the shared cell.
func (s *System) render() string {
	if s.grid == nil {
		s.grid = canvas.NewGrid(s.width, s.height)
	}
	s.grid.Reset()

	s.mu.Lock()
	for i := range s.particles {
		p := &s.particles[i]
		s.grid.Set(int(p.X), int(p.Y), s.glyphFor(p))
	}
	s.mu.Unlock()

	return s.grid.String()
}

// glyphFor picks a glyph by relative age: particles fade as they approach
// their respawn age.
func (s *System) glyphFor(p *Particle) rune {
	idx := p.Age * len(ageGlyphs) / (s.maxAge + 1)
	if idx >= len(ageGlyphs) {
		idx = len(ageGlyphs) - 1
	}
	return ageGlyphs[idx]
}

// Frame implements anim.Renderer: each tick advances the simulation once
// and returns the projected grid.
func (s *System) Frame(tick int) string {
	if tick > 0 {
		s.Step()
	}
	return s.render()
}
