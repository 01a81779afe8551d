package canvas

import "strings"

// Grid is a character-cell drawing surface: one rune per terminal cell.
// Unlike Canvas, which packs 2x4 pixels into each braille character, Grid
// maps coordinates directly to cells, so effects can choose a distinct
// glyph per cell. Writes to the same cell resolve last-write-wins.
type Grid struct {
	width  int    // width in cells
	height int    // height in cells
	cells  []rune // cell data, row-major [y*width+x]
}

// NewGrid creates a grid with the given cell dimensions.
// Non-positive dimensions are raised to 1.
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	g.Reset()
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// inBounds checks if the given cell coordinates are within the grid.
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set places glyph into the cell at (x, y), overwriting any previous glyph
// (last-write-wins). Out-of-bounds coordinates are ignored.
func (g *Grid) Set(x, y int, glyph rune) {
	if g.inBounds(x, y) {
		g.cells[y*g.width+x] = glyph
	}
}

// Get returns the glyph at (x, y), or a space for out-of-bounds coordinates.
func (g *Grid) Get(x, y int) rune {
	if !g.inBounds(x, y) {
		return ' '
	}
	return g.cells[y*g.width+x]
}

// Reset fills every cell with a space.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
}

// Row renders a single row of cells at the given row index.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}

	var sb strings.Builder
	sb.Grow(g.width)
	for x := 0; x < g.width; x++ {
		sb.WriteRune(g.cells[y*g.width+x])
	}
	return sb.String()
}

// String renders the entire grid as a multi-line string.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(g.Row(y))
	}
	return sb.String()
}
