package model

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

const (
	cellAliveRune = '#'
	cellDeadRune  = '.'
)

// Grid is a fixed-size dense board stored row-major: cells[y*width+x]
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	width, height = max(0, width), max(0, height)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false); out of bounds is a no-op
func (g *Grid) Set(x, y int, alive bool) {
	if g.inBounds(x, y) {
		g.cells[y*g.width+x] = alive
	}
}

// Get returns the state of a cell; anything outside the grid is dead
func (g *Grid) Get(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[y*g.width+x]
}

// CountNeighbors counts living cells in the Moore neighborhood of (x, y).
// Edges are clamped, not wrapped.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		row := g.cells[ny*g.width : (ny+1)*g.width]
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if row[nx] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// CopyFrom overwrites g with the contents of src
func (g *Grid) CopyFrom(src *Grid) error {
	if src.width != g.width || src.height != g.height {
		return errors.Errorf("[CopyFrom] dimension mismatch: have %dx%d, got %dx%d",
			g.width, g.height, src.width, src.height)
	}
	copy(g.cells, src.cells)
	return nil
}

// Randomize sets every cell alive with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}

// AddGlider adds a glider pattern with its top-left corner at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.Set(startX+x, startY+y, cell)
		}
	}
}

// AddBlinker adds a three-cell blinker centred on (centerX, centerY)
func (g *Grid) AddBlinker(centerX, centerY int, vertical bool) {
	for d := -1; d <= 1; d++ {
		if vertical {
			g.Set(centerX, centerY+d, true)
		} else {
			g.Set(centerX+d, centerY, true)
		}
	}
}

// String renders the grid one row per line, '#' alive and '.' dead
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] {
				sb.WriteByte(cellAliveRune)
			} else {
				sb.WriteByte(cellDeadRune)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid builds a grid from the String form. Rows must share one width.
func ParseGrid(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	width := len(strings.TrimSpace(lines[0]))
	g := NewGrid(width, len(lines))
	for y, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != width {
			return nil, errors.Errorf("[ParseGrid] row %d has width %d, want %d", y, len(line), width)
		}
		for x, r := range line {
			switch r {
			case cellAliveRune:
				g.Set(x, y, true)
			case cellDeadRune:
			default:
				return nil, errors.Errorf("[ParseGrid] unexpected rune %q at (%d, %d)", r, x, y)
			}
		}
	}
	return g, nil
}
