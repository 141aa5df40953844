package model

import (
	"math/rand"
	"testing"
)

func mustParse(t *testing.T, s string) *Grid {
	t.Helper()
	g, err := ParseGrid(s)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func TestCountNeighbors(t *testing.T) {
	full := mustParse(t, `
###
###
###`)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"centre excludes self", 1, 1, 8},
		{"corner top-left", 0, 0, 3},
		{"corner bottom-right", 2, 2, 3},
		{"edge top", 1, 0, 5},
		{"edge left", 0, 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := full.CountNeighbors(tt.x, tt.y); got != tt.want {
				t.Errorf("CountNeighbors(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCountNeighborsDoesNotWrap(t *testing.T) {
	g := mustParse(t, `
....#
.....
.....
#...#`)
	if got := g.CountNeighbors(0, 0); got != 0 {
		t.Errorf("corner (0,0) counted %d wrapped neighbors", got)
	}
}

func TestCountNeighborsRange(t *testing.T) {
	g := NewGrid(17, 11)
	g.Randomize(rand.New(rand.NewSource(7)), 0.5)
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			n := g.CountNeighbors(x, y)
			if n < 0 || n > 8 {
				t.Fatalf("CountNeighbors(%d, %d) = %d out of range", x, y, n)
			}
			manual := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && g.Get(x+dx, y+dy) {
						manual++
					}
				}
			}
			if n != manual {
				t.Fatalf("CountNeighbors(%d, %d) = %d, want %d", x, y, n, manual)
			}
		}
	}
}

func TestGetSetOutOfBounds(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(-1, 0, true)
	g.Set(3, 0, true)
	g.Set(0, 2, true)
	if g.CountLivingCells() != 0 {
		t.Fatal("out-of-bounds Set must be a no-op")
	}
	if g.Get(-1, -1) || g.Get(5, 5) {
		t.Fatal("out-of-bounds Get must report dead")
	}
	g.Set(2, 1, true)
	if !g.Get(2, 1) {
		t.Fatal("Set(2, 1) not visible through Get")
	}
}

func TestCopyFrom(t *testing.T) {
	src := mustParse(t, `
#.
.#`)
	dst := NewGrid(2, 2)
	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if dst.String() != src.String() {
		t.Errorf("copy mismatch:\n%s\nwant\n%s", dst, src)
	}
	if err := NewGrid(3, 2).CopyFrom(src); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestRandomizeDensity(t *testing.T) {
	g := NewGrid(200, 200)
	g.Randomize(rand.New(rand.NewSource(1)), 0.5)
	frac := float64(g.CountLivingCells()) / float64(200*200)
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("density = %.3f, want about 0.5", frac)
	}

	g.Randomize(rand.New(rand.NewSource(1)), 0)
	if g.CountLivingCells() != 0 {
		t.Error("density 0 must leave every cell dead")
	}
}

func TestParseGridErrors(t *testing.T) {
	for name, s := range map[string]string{
		"ragged":   "##\n#",
		"bad rune": "#x",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseGrid(s); err == nil {
				t.Errorf("ParseGrid(%q) succeeded", s)
			}
		})
	}
}

func TestAddGlider(t *testing.T) {
	g := NewGrid(5, 5)
	g.AddGlider(1, 1)
	want := `.....
..#..
...#.
.###.
.....
`
	if g.String() != want {
		t.Errorf("glider:\n%s\nwant\n%s", g, want)
	}
}

func TestClear(t *testing.T) {
	g := mustParse(t, "##\n.#")
	g.Clear()
	if g.CountLivingCells() != 0 {
		t.Errorf("Clear left %d living cells", g.CountLivingCells())
	}
}
