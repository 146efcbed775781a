// Package engine holds the falling-block rules: grid geometry, the piece
// catalog, the bag queue, the board, scoring, undo history and the turn
// sequence that ties them together. It has no terminal or storage
// dependencies so every rule can be tested in isolation.
package engine

import "fmt"

// MaskSize is the side length of every piece mask.
const MaskSize = 4

// Mask is a square piece shape. Non-zero cells are occupied and carry the
// piece color id. Masks are plain arrays, so assignment copies them.
type Mask [MaskSize][MaskSize]int

// Cells returns the number of occupied cells in the mask.
func (m Mask) Cells() int {
	n := 0
	for y := range MaskSize {
		for x := range MaskSize {
			if m[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// Grid is the locked-cell matrix of the playfield.
// Cells are stored row-major (index = y*w + x); 0 means empty.
//
// Grid values are treated as immutable once handed out: every function in
// this package that produces a grid returns a freshly allocated one.
type Grid struct {
	w, h  int
	cells []int
}

// NewGrid creates an empty grid. It panics on non-positive dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("engine: invalid grid size %dx%d", w, h))
	}
	return &Grid{w: w, h: h, cells: make([]int, w*h)}
}

// GridFromRows builds a grid from row slices. All rows must share the
// length of the first row.
func GridFromRows(rows [][]int) *Grid {
	if len(rows) == 0 {
		panic("engine: grid needs at least one row")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.w {
			panic(fmt.Sprintf("engine: row %d has %d cells, want %d", y, len(row), g.w))
		}
		copy(g.cells[y*g.w:(y+1)*g.w], row)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell value at (x, y), or 0 when out of bounds.
func (g *Grid) At(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[y*g.w+x]
}

func (g *Grid) set(x, y, v int) {
	if g.InBounds(x, y) {
		g.cells[y*g.w+x] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal reports whether two grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Rows returns the grid as a fresh row-major matrix.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.h)
	for y := range g.h {
		rows[y] = make([]int, g.w)
		copy(rows[y], g.cells[y*g.w:(y+1)*g.w])
	}
	return rows
}

// Empty reports whether no cell is occupied.
func (g *Grid) Empty() bool {
	for _, c := range g.cells {
		if c != 0 {
			return false
		}
	}
	return true
}

func (g *Grid) rowFull(y int) bool {
	for x := range g.w {
		if g.cells[y*g.w+x] == 0 {
			return false
		}
	}
	return true
}

// Overlaps reports whether mask placed with its top-left corner at (x, y)
// collides with the grid. A collision is any occupied mask cell that lands
// outside the grid or on an occupied grid cell.
func Overlaps(g *Grid, m Mask, x, y int) bool {
	for my := range MaskSize {
		for mx := range MaskSize {
			if m[my][mx] == 0 {
				continue
			}
			gx, gy := x+mx, y+my
			if !g.InBounds(gx, gy) || g.cells[gy*g.w+gx] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge returns a copy of g with the occupied cells of mask written at
// (x, y). Cells falling outside the grid are dropped.
func Merge(g *Grid, m Mask, x, y int) *Grid {
	out := g.Clone()
	for my := range MaskSize {
		for mx := range MaskSize {
			if m[my][mx] != 0 {
				out.set(x+mx, y+my, m[my][mx])
			}
		}
	}
	return out
}

// ClearFullRows removes every full row at once and returns how many were
// removed along with the compacted grid. Surviving rows keep their order
// and settle at the bottom; the freed rows at the top are empty.
func ClearFullRows(g *Grid) (int, *Grid) {
	out := NewGrid(g.w, g.h)
	dst := g.h - 1
	removed := 0
	for y := g.h - 1; y >= 0; y-- {
		if g.rowFull(y) {
			removed++
			continue
		}
		copy(out.cells[dst*g.w:(dst+1)*g.w], g.cells[y*g.w:(y+1)*g.w])
		dst--
	}
	return removed, out
}
