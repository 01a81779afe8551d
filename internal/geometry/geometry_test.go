package geometry

import (
	"errors"
	"math"
	"strings"
	"testing"
	"testing/quick"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Shape
		wantErr bool
	}{
		{"circle", "circle", Circle, false},
		{"diamond", "diamond", Diamond, false},
		{"unknown", "hexagon", 0, true},
		{"empty", "", 0, true},
		{"case sensitive", "Circle", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseShape(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownShape) {
					t.Errorf("ParseShape(%q) error = %v, want ErrUnknownShape", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShape(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseShape(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShapeString(t *testing.T) {
	if Circle.String() != "circle" || Diamond.String() != "diamond" {
		t.Errorf("Shape.String() = %q, %q", Circle.String(), Diamond.String())
	}
}

func TestPhaseWraps(t *testing.T) {
	for tick := 0; tick < 500; tick++ {
		p := Phase(tick)
		if p < 0 || p >= 2.0*math.Pi {
			t.Fatalf("Phase(%d) = %f, want within [0, 2π)", tick, p)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	for _, shape := range []Shape{Circle, Diamond} {
		frame := Render(shape, 1.0)
		lines := strings.Split(frame, "\n")
		if len(lines) != canvasSize/4 {
			t.Errorf("%v: frame has %d lines, want %d", shape, len(lines), canvasSize/4)
		}
		for _, line := range lines {
			if got := len([]rune(line)); got != canvasSize/2 {
				t.Errorf("%v: line has %d runes, want %d", shape, got, canvasSize/2)
			}
		}
	}
}

func TestShapesDiffer(t *testing.T) {
	if Render(Circle, 0.5) == Render(Diamond, 0.5) {
		t.Error("circle and diamond render identically")
	}
}

func TestSpokeRotates(t *testing.T) {
	if Render(Circle, 0) == Render(Circle, math.Pi/2) {
		t.Error("circle frames at different phases are identical; the spoke should rotate")
	}
}

// TestRenderPurity verifies that rendering is a pure function of
// (shape, phase): the same inputs always produce the same frame.
func TestRenderPurity(t *testing.T) {
	property := func(phaseUnit uint16, diamond bool) bool {
		phase := 2.0 * math.Pi * float64(phaseUnit) / 65536.0
		shape := Circle
		if diamond {
			shape = Diamond
		}
		return Render(shape, phase) == Render(shape, phase)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestAnimationRestartable verifies that a fresh animation at the same tick
// renders the same frame, since no hidden state exists beyond the phase.
func TestAnimationRestartable(t *testing.T) {
	a := New(Circle)
	ticks := []int{0, 7, 13, 48, 100}

	first := make([]string, len(ticks))
	for i, tick := range ticks {
		first[i] = a.Frame(tick)
	}

	b := New(Circle)
	for i, tick := range ticks {
		if got := b.Frame(tick); got != first[i] {
			t.Errorf("Frame(%d) differs between animation instances", tick)
		}
	}
}
