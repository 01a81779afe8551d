package manager

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"flicker/internal/anim"
	"flicker/internal/geometry"
	"flicker/internal/surface"
	"flicker/internal/visual"
)

// testInterval keeps lifecycle tests fast.
const testInterval = 10 * time.Millisecond

// lockedBuffer lets tests share a sink with unit goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func newTestManager() *Manager {
	return New(surface.New(&lockedBuffer{}), zerolog.Nop(), Options{
		TickInterval:   testInterval,
		ParticleWidth:  20,
		ParticleHeight: 8,
	})
}

func TestManagerScenario(t *testing.T) {
	m := newTestManager()

	if _, err := m.CreateParticleSystem("p1", 10); err != nil {
		t.Fatalf("CreateParticleSystem: %v", err)
	}
	if _, err := m.CreateGeometric("g1", "circle"); err != nil {
		t.Fatalf("CreateGeometric: %v", err)
	}

	got := m.List()
	want := []string{"p1", "g1"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("List() = %v, want %v", got, want)
	}

	if err := m.Start("p1"); err != nil {
		t.Fatalf("Start(p1): %v", err)
	}
	if err := m.Start("g1"); err != nil {
		t.Fatalf("Start(g1): %v", err)
	}

	time.Sleep(2 * testInterval)
	for _, name := range want {
		u, err := m.Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		if u.State() != anim.Running {
			t.Errorf("%s state = %v, want Running", name, u.State())
		}
	}

	if err := m.StopAll(); err != nil {
		t.Fatalf("StopAll: %v", err)
	}
	for _, name := range want {
		u, _ := m.Get(name)
		if u.State() != anim.Stopped {
			t.Errorf("%s state = %v, want Stopped after StopAll", name, u.State())
		}
	}
}

func TestDuplicateName(t *testing.T) {
	m := newTestManager()

	if _, err := m.CreateSpinner("a", "x", ""); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := m.CreatePulse("a", "y"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("second create error = %v, want ErrDuplicateName", err)
	}

	// The failed create must not disturb the registry
	if got := m.List(); len(got) != 1 || got[0] != "a" {
		t.Errorf("List() = %v, want [a]", got)
	}
}

func TestNotFound(t *testing.T) {
	m := newTestManager()

	if err := m.Start("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Start error = %v, want ErrNotFound", err)
	}
	if err := m.Stop("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Stop error = %v, want ErrNotFound", err)
	}
	if err := m.Remove("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove error = %v, want ErrNotFound", err)
	}
	if _, err := m.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
	if err := m.UpdateProgress("missing", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateProgress error = %v, want ErrNotFound", err)
	}
	if err := m.ChangeStyle("missing", "bars"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ChangeStyle error = %v, want ErrNotFound", err)
	}
}

func TestAnonymousName(t *testing.T) {
	m := newTestManager()

	u, err := m.CreateSpinner("", "anon", "")
	if err != nil {
		t.Fatalf("CreateSpinner: %v", err)
	}
	if u.Name() == "" {
		t.Fatal("anonymous unit got an empty name")
	}
	if got := m.List(); len(got) != 1 || got[0] != u.Name() {
		t.Errorf("List() = %v, want the generated name %q", got, u.Name())
	}
}

func TestCreateGeometricUnknownShape(t *testing.T) {
	m := newTestManager()

	if _, err := m.CreateGeometric("g", "hexagon"); !errors.Is(err, geometry.ErrUnknownShape) {
		t.Errorf("CreateGeometric error = %v, want ErrUnknownShape", err)
	}
	if got := m.List(); len(got) != 0 {
		t.Errorf("List() = %v, want empty after failed create", got)
	}
}

func TestCreateVisualizerInvalidStyle(t *testing.T) {
	m := newTestManager()

	if _, err := m.CreateVisualizer("v", "nonexistent"); !errors.Is(err, visual.ErrInvalidStyle) {
		t.Errorf("CreateVisualizer error = %v, want ErrInvalidStyle", err)
	}
}

func TestRemove(t *testing.T) {
	m := newTestManager()

	m.CreateSpinner("a", "", "")
	m.CreateSpinner("b", "", "")
	m.Start("a")

	if err := m.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := m.List(); len(got) != 1 || got[0] != "b" {
		t.Errorf("List() = %v, want [b]", got)
	}
	if _, err := m.Get("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Remove = %v, want ErrNotFound", err)
	}
}

func TestStoppedUnitStaysListed(t *testing.T) {
	m := newTestManager()

	m.CreateSpinner("a", "", "")
	m.Start("a")
	m.Stop("a")

	// Stopping does not unregister; only Remove does
	if got := m.List(); len(got) != 1 || got[0] != "a" {
		t.Errorf("List() = %v, want [a] after Stop", got)
	}
}

func TestStopAllMixedKinds(t *testing.T) {
	m := newTestManager()

	creates := []func() error{
		func() error { _, err := m.CreateSpinner("s", "x", ""); return err },
		func() error { _, err := m.CreateProgressBar("p", 10, 10, ""); return err },
		func() error { _, err := m.CreatePulse("u", "x"); return err },
		func() error { _, err := m.CreateWave("w", "x"); return err },
		func() error { _, err := m.CreateParticleSystem("pa", 10); return err },
		func() error { _, err := m.CreateGeometric("g", "diamond"); return err },
		func() error { _, err := m.CreateWaveform("wf"); return err },
		func() error { _, err := m.CreateVisualizer("v", ""); return err },
	}
	for _, create := range creates {
		if err := create(); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	for _, name := range m.List() {
		if err := m.Start(name); err != nil {
			t.Fatalf("Start(%s): %v", name, err)
		}
	}
	time.Sleep(2 * testInterval)

	// Stop is fanned out: total latency must not grow with registry size
	start := time.Now()
	if err := m.StopAll(); err != nil {
		t.Fatalf("StopAll: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("StopAll took %v for 8 units; cancellation should fan out", elapsed)
	}

	for _, name := range m.List() {
		u, _ := m.Get(name)
		if u.State() != anim.Stopped {
			t.Errorf("%s state = %v, want Stopped", name, u.State())
		}
	}
}

func TestStopAllIdempotent(t *testing.T) {
	m := newTestManager()
	m.CreateSpinner("a", "", "")

	// StopAll on idle or already-stopped units is safe
	if err := m.StopAll(); err != nil {
		t.Fatalf("StopAll on idle registry: %v", err)
	}
	m.Start("a")
	if err := m.StopAll(); err != nil {
		t.Fatalf("first StopAll: %v", err)
	}
	if err := m.StopAll(); err != nil {
		t.Fatalf("second StopAll: %v", err)
	}
}

func TestUpdateProgress(t *testing.T) {
	m := newTestManager()

	u, err := m.CreateProgressBar("p", 100, 10, "")
	if err != nil {
		t.Fatalf("CreateProgressBar: %v", err)
	}
	if err := m.UpdateProgress("p", 50); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	bar := u.Renderer().(*anim.ProgressBar)
	if bar.Current() != 50 {
		t.Errorf("Current() = %d, want 50", bar.Current())
	}

	// Kind mismatch is reported
	m.CreateSpinner("s", "", "")
	if err := m.UpdateProgress("s", 1); err == nil {
		t.Error("UpdateProgress on a spinner should fail")
	}
}

func TestVisualizerRoundTrip(t *testing.T) {
	m := newTestManager()

	if _, err := m.CreateVisualizer("v", ""); err != nil {
		t.Fatalf("CreateVisualizer: %v", err)
	}
	if err := m.Start("v"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.StopAll()

	// Feed and switch styles while running; sampling never pauses
	if err := m.Feed("v", 0.1, 0.2, 0.3); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := m.ChangeStyle("v", "wave"); err != nil {
		t.Fatalf("ChangeStyle: %v", err)
	}
	if err := m.Feed("v", 0.4); err != nil {
		t.Fatalf("Feed after ChangeStyle: %v", err)
	}

	if err := m.ChangeStyle("v", "nonexistent"); !errors.Is(err, visual.ErrInvalidStyle) {
		t.Errorf("ChangeStyle error = %v, want ErrInvalidStyle", err)
	}

	u, _ := m.Get("v")
	viz := u.Renderer().(*visual.Visualizer)
	if viz.Style() != "wave" {
		t.Errorf("Style() = %q, want %q after rejected switch", viz.Style(), "wave")
	}
	if viz.Len() != 4 {
		t.Errorf("Len() = %d, want 4", viz.Len())
	}

	// Feed on a non-visualizer is reported
	m.CreateSpinner("s", "", "")
	if err := m.Feed("s", 0.1); err == nil {
		t.Error("Feed on a spinner should fail")
	}
}

func TestConcurrentRegistryAccess(t *testing.T) {
	m := newTestManager()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := string(rune('a' + i))
			if _, err := m.CreateSpinner(name, "x", ""); err != nil {
				t.Errorf("CreateSpinner(%s): %v", name, err)
				return
			}
			m.Start(name)
			m.List()
			m.Stop(name)
		}(i)
	}
	wg.Wait()

	if got := len(m.List()); got != 8 {
		t.Errorf("List() has %d entries, want 8", got)
	}
	if err := m.StopAll(); err != nil {
		t.Fatalf("StopAll: %v", err)
	}
}
