package particle

import (
	"testing"
	"testing/quick"
)

// TestPopulationInvariant verifies that for any count and any number of
// ticks, the system always reports exactly count particles.
func TestPopulationInvariant(t *testing.T) {
	property := func(count, ticks uint8) bool {
		s := NewSystem(int(count), 20, 10, 5)
		for i := 0; i < int(ticks); i++ {
			s.Step()
		}
		return len(s.Snapshot()) == int(count)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestParticlesStayInBounds verifies that after any Step, every particle
// position projects onto a valid grid cell.
func TestParticlesStayInBounds(t *testing.T) {
	property := func(ticks uint8) bool {
		const width, height = 15, 7
		s := NewSystem(25, width, height, 10)

		for i := 0; i < int(ticks); i++ {
			s.Step()
		}
		for _, p := range s.Snapshot() {
			x, y := int(p.X), int(p.Y)
			if x < 0 || x >= width || y < 0 || y >= height {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
