// Package manager provides the name-keyed animation registry with aggregate
// lifecycle operations. A Manager is explicitly constructed and owned by the
// host; there is no package-level registry.
package manager

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"flicker/internal/anim"
	"flicker/internal/geometry"
	"flicker/internal/particle"
	"flicker/internal/surface"
	"flicker/internal/visual"
)

// Registry errors. Both are synchronous and local to the failing call.
var (
	// ErrDuplicateName is returned by Create* when the name is taken.
	ErrDuplicateName = errors.New("animation name already registered")
	// ErrNotFound is returned by operations on unknown names.
	ErrNotFound = errors.New("animation not found")
)

// Options configures the defaults applied to units the manager creates.
// Zero values select the engine defaults.
type Options struct {
	TickInterval       time.Duration // frame interval for created units
	SpinnerStyle       string        // default spinner style
	ParticleWidth      int           // particle bounds in cells
	ParticleHeight     int
	ParticleMaxAge     int // ticks before respawn
	VisualizerCapacity int // sample ring buffer capacity
	VisualizerWidth    int // visualizer render width in cells
	VisualizerStyle    string
}

// applyDefaults fills unset fields. Numeric zero values are left for the
// owning packages to default, so the manager never duplicates their limits.
func (o *Options) applyDefaults() {
	if o.TickInterval <= 0 {
		o.TickInterval = anim.DefaultInterval
	}
	if o.SpinnerStyle == "" {
		o.SpinnerStyle = anim.DefaultSpinnerStyle
	}
	if o.VisualizerStyle == "" {
		o.VisualizerStyle = visual.DefaultStyle
	}
}

// Manager owns a registry of animation units sharing one render surface.
// All registry operations are safe under concurrent use.
type Manager struct {
	surface *surface.Surface
	log     zerolog.Logger
	opts    Options

	mu    sync.Mutex
	units map[string]*anim.Unit
	order []string // registration order, for List
}

// New creates an empty manager writing through the given surface.
func New(s *surface.Surface, log zerolog.Logger, opts Options) *Manager {
	opts.applyDefaults()
	return &Manager{
		surface: s,
		log:     log,
		opts:    opts,
		units:   make(map[string]*anim.Unit),
	}
}

// register creates a unit in the Idle state and adds it to the registry.
// An empty name is replaced with a generated UUID, for directly-owned
// anonymous units.
func (m *Manager) register(name string, kind anim.Kind, r anim.Renderer) (*anim.Unit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		name = uuid.New().String()
	}
	if _, exists := m.units[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	u := anim.NewUnit(name, kind, m.opts.TickInterval, r, m.surface, m.log)
	m.units[name] = u
	m.order = append(m.order, name)
	return u, nil
}

// CreateSpinner registers a spinner animation. An unknown style falls back
// to the configured default.
func (m *Manager) CreateSpinner(name, label, style string) (*anim.Unit, error) {
	if style == "" {
		style = m.opts.SpinnerStyle
	}
	return m.register(name, anim.KindSpinner, anim.NewSpinner(label, style))
}

// CreateProgressBar registers a caller-driven progress bar. Use
// UpdateProgress to set the current value.
func (m *Manager) CreateProgressBar(name string, total, width int, label string) (*anim.Unit, error) {
	return m.register(name, anim.KindProgressBar, anim.NewProgressBar(total, width, label))
}

// CreatePulse registers a pulse animation.
func (m *Manager) CreatePulse(name, label string) (*anim.Unit, error) {
	return m.register(name, anim.KindPulse, anim.NewPulse(label))
}

// CreateWave registers a wave animation.
func (m *Manager) CreateWave(name, label string) (*anim.Unit, error) {
	return m.register(name, anim.KindWave, anim.NewWave(label))
}

// CreateParticleSystem registers a particle system of exactly count
// particles within the configured bounds.
func (m *Manager) CreateParticleSystem(name string, count int) (*anim.Unit, error) {
	sys := particle.NewSystem(count, m.opts.ParticleWidth, m.opts.ParticleHeight, m.opts.ParticleMaxAge)
	return m.register(name, anim.KindParticle, sys)
}

// CreateGeometric registers a geometric animation for the named shape.
// An unparseable shape name fails synchronously.
func (m *Manager) CreateGeometric(name, shape string) (*anim.Unit, error) {
	s, err := geometry.ParseShape(shape)
	if err != nil {
		return nil, err
	}
	return m.register(name, anim.KindGeometric, geometry.New(s))
}

// CreateWaveform registers a synthetic waveform animation.
func (m *Manager) CreateWaveform(name string) (*anim.Unit, error) {
	return m.register(name, anim.KindWaveform, visual.NewWaveform(m.opts.VisualizerWidth))
}

// CreateVisualizer registers an audio visualizer. Feed samples with Feed
// and switch styles with ChangeStyle. An empty style selects the configured
// default; an unrecognized one fails with visual.ErrInvalidStyle.
func (m *Manager) CreateVisualizer(name, style string) (*anim.Unit, error) {
	if style == "" {
		style = m.opts.VisualizerStyle
	}
	viz, err := visual.NewVisualizer(m.opts.VisualizerCapacity, m.opts.VisualizerWidth, style)
	if err != nil {
		return nil, err
	}
	return m.register(name, anim.KindAudioVisualizer, viz)
}

// List returns the registered names in registration order. The result is a
// snapshot: concurrent creates or removals do not affect it.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Get returns the named unit.
func (m *Manager) Get(name string) (*anim.Unit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.units[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return u, nil
}

// Remove stops the named unit and deletes it from the registry. Stopped
// units stay registered until removed.
func (m *Manager) Remove(name string) error {
	u, err := m.Get(name)
	if err != nil {
		return err
	}
	u.Stop()

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.units, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Start starts the named unit. Starting an already-running unit is a no-op.
func (m *Manager) Start(name string) error {
	u, err := m.Get(name)
	if err != nil {
		return err
	}
	u.Start()
	return nil
}

// Stop stops the named unit, blocking until its tick loop has exited. Any
// render failure recorded by the unit is returned.
func (m *Manager) Stop(name string) error {
	u, err := m.Get(name)
	if err != nil {
		return err
	}
	return u.Stop()
}

// StopAll signals every registered unit to stop concurrently and waits for
// all of them to reach Stopped. Total latency is bounded by a single unit's
// stop bound regardless of registry size. Render failures are aggregated;
// StopAll itself always completes.
func (m *Manager) StopAll() error {
	m.mu.Lock()
	units := make([]*anim.Unit, 0, len(m.order))
	for _, name := range m.order {
		units = append(units, m.units[name])
	}
	m.mu.Unlock()

	errs := make([]error, len(units))
	var wg sync.WaitGroup
	for i, u := range units {
		wg.Add(1)
		go func(i int, u *anim.Unit) {
			defer wg.Done()
			errs[i] = u.Stop()
		}(i, u)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// UpdateProgress sets the current value of the named progress bar.
func (m *Manager) UpdateProgress(name string, current int) error {
	u, err := m.Get(name)
	if err != nil {
		return err
	}
	bar, ok := u.Renderer().(*anim.ProgressBar)
	if !ok {
		return fmt.Errorf("animation %q is a %s, not a progress bar", name, u.Kind())
	}
	bar.Update(current)
	return nil
}

// ChangeStyle switches the rendering style of the named visualizer without
// interrupting its sampling. An unrecognized style returns
// visual.ErrInvalidStyle and leaves the previous style active.
func (m *Manager) ChangeStyle(name, style string) error {
	viz, err := m.visualizer(name)
	if err != nil {
		return err
	}
	return viz.SetStyle(style)
}

// Feed appends amplitude samples to the named visualizer's buffer.
func (m *Manager) Feed(name string, samples ...float64) error {
	viz, err := m.visualizer(name)
	if err != nil {
		return err
	}
	viz.Feed(samples...)
	return nil
}

// visualizer resolves the named unit to its Visualizer renderer.
func (m *Manager) visualizer(name string) (*visual.Visualizer, error) {
	u, err := m.Get(name)
	if err != nil {
		return nil, err
	}
	viz, ok := u.Renderer().(*visual.Visualizer)
	if !ok {
		return nil, fmt.Errorf("animation %q is a %s, not a visualizer", name, u.Kind())
	}
	return viz, nil
}
