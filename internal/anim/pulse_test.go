package anim

import (
	"strings"
	"testing"
)

func TestPulseLevelBounds(t *testing.T) {
	p := NewPulse("rec")
	for tick := 0; tick < 3*pulsePeriod; tick++ {
		level := p.Level(tick)
		if level < pulseMinLevel || level > pulseMaxLevel {
			t.Fatalf("Level(%d) = %d, want within [%d, %d]", tick, level, pulseMinLevel, pulseMaxLevel)
		}
	}
}

func TestPulsePeriodicity(t *testing.T) {
	p := NewPulse("rec")
	for tick := 0; tick < pulsePeriod; tick++ {
		if p.Level(tick) != p.Level(tick+pulsePeriod) {
			t.Errorf("Level(%d) = %d, Level(%d) = %d; envelope should repeat every period",
				tick, p.Level(tick), tick+pulsePeriod, p.Level(tick+pulsePeriod))
		}
	}
}

func TestPulseFrameContainsLabel(t *testing.T) {
	p := NewPulse("recording")
	if frame := p.Frame(3); !strings.Contains(frame, "recording") {
		t.Errorf("frame %q does not contain the label", frame)
	}
}
