package canvas

import (
	"strings"
	"testing"
	"testing/quick"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"normal", 10, 4, 10, 4},
		{"single cell", 1, 1, 1, 1},
		{"zero raised", 0, 0, 1, 1},
		{"negative raised", -3, -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.width, tt.height)
			if g.Width() != tt.wantW {
				t.Errorf("Width() = %d, want %d", g.Width(), tt.wantW)
			}
			if g.Height() != tt.wantH {
				t.Errorf("Height() = %d, want %d", g.Height(), tt.wantH)
			}
		})
	}
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid(8, 4)

	if g.Get(2, 1) != ' ' {
		t.Error("cell should be a space initially")
	}

	g.Set(2, 1, '*')
	if g.Get(2, 1) != '*' {
		t.Errorf("Get(2,1) = %q, want %q", g.Get(2, 1), '*')
	}

	// Last write wins for a shared cell
	g.Set(2, 1, '#')
	if g.Get(2, 1) != '#' {
		t.Errorf("Get(2,1) = %q, want %q after overwrite", g.Get(2, 1), '#')
	}

	// Out of bounds should not panic, and Get reports a space
	g.Set(-1, 0, '*')
	g.Set(100, 0, '*')
	if g.Get(-1, 0) != ' ' {
		t.Error("out-of-bounds Get should return a space")
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, 'a')
	g.Set(2, 1, 'b')

	got := g.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGridReset(t *testing.T) {
	g := NewGrid(4, 2)
	g.Set(1, 1, 'x')
	g.Reset()

	if strings.TrimSpace(g.String()) != "" {
		t.Errorf("grid should be blank after Reset, got %q", g.String())
	}
}

// TestGridRowWidth verifies that every rendered row has exactly the grid
// width in runes, whatever was written.
func TestGridRowWidth(t *testing.T) {
	property := func(width, height uint8, points [][3]uint8) bool {
		g := NewGrid(int(width)+1, int(height)+1)
		for _, p := range points {
			g.Set(int(p[0]), int(p[1]), rune('!'+p[2]%90))
		}

		for y := 0; y < g.Height(); y++ {
			if len([]rune(g.Row(y))) != g.Width() {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestGridLastWriteWins verifies that for any sequence of writes to one
// cell, the final glyph is the last written.
func TestGridLastWriteWins(t *testing.T) {
	property := func(glyphs []uint8) bool {
		if len(glyphs) == 0 {
			return true
		}

		g := NewGrid(2, 2)
		var last rune
		for _, b := range glyphs {
			last = rune('!' + b%90)
			g.Set(0, 0, last)
		}
		return g.Get(0, 0) == last
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
