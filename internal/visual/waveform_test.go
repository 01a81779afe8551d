package visual

import "testing"

func TestWaveformWidth(t *testing.T) {
	w := NewWaveform(20)
	if got := len([]rune(w.Frame(0))); got != 20 {
		t.Errorf("frame has %d runes, want 20", got)
	}

	// Non-positive width falls back to the default
	if got := NewWaveform(0).Width(); got != DefaultWidth {
		t.Errorf("Width() = %d, want %d", got, DefaultWidth)
	}
}

func TestWaveformSamplesInRange(t *testing.T) {
	w := NewWaveform(32)
	for tick := 0; tick < 50; tick++ {
		for i, s := range w.Samples(tick) {
			if s < -1 || s > 1 {
				t.Fatalf("tick %d sample %d = %f, want within [-1, 1]", tick, i, s)
			}
		}
	}
}

func TestWaveformDeterministic(t *testing.T) {
	a := NewWaveform(24)
	b := NewWaveform(24)
	for tick := 0; tick < 20; tick++ {
		if a.Frame(tick) != b.Frame(tick) {
			t.Fatalf("Frame(%d) differs between instances", tick)
		}
	}
}

func TestWaveformTravels(t *testing.T) {
	w := NewWaveform(24)
	if w.Frame(0) == w.Frame(1) {
		t.Error("consecutive frames are identical; the waveform should travel")
	}
}
