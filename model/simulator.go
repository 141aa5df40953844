package model

import (
	"math/rand"
	"time"

	"github.com/sheikhrachel/go-gol-camera/rules"
)

// DefaultDensity is the probability a cell starts alive
const DefaultDensity = 0.5

// Simulator owns a double-buffered board. Step reads only previous and
// writes only current, then copies current into previous.
type Simulator struct {
	current    *Grid
	previous   *Grid
	rng        *rand.Rand
	density    float64
	generation int
}

// Option configures a Simulator
type Option func(*Simulator)

// WithSeed pins the random source used by Initialize
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity overrides the initial alive probability
func WithDensity(density float64) Option {
	return func(s *Simulator) {
		s.density = density
	}
}

// NewSimulator allocates both buffers once. Cells start dead until Initialize or Load.
func NewSimulator(width, height int, opts ...Option) *Simulator {
	s := &Simulator{
		current:  NewGrid(width, height),
		previous: NewGrid(width, height),
		density:  DefaultDensity,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Initialize fills the board randomly and syncs previous so the first
// rendered frame matches the first evaluated generation
func (s *Simulator) Initialize() {
	s.current.Randomize(s.rng, s.density)
	s.sync()
	s.generation = 0
}

// Load replaces both buffers with a copy of g
func (s *Simulator) Load(g *Grid) error {
	if err := s.current.CopyFrom(g); err != nil {
		return err
	}
	s.sync()
	s.generation = 0
	return nil
}

// Step advances the board by one generation
func (s *Simulator) Step() {
	prev, next := s.previous, s.current
	for y := range prev.height {
		row := next.cells[y*next.width : (y+1)*next.width]
		for x := range prev.width {
			row[x] = rules.ApplyConwayRules(prev.CountNeighbors(x, y), prev.cells[y*prev.width+x])
		}
	}
	s.sync()
	s.generation++
}

// sync copies current into previous; both share dimensions by construction
func (s *Simulator) sync() {
	copy(s.previous.cells, s.current.cells)
}

// Render requests one DrawCell per live cell of the current generation
func (s *Simulator) Render(r Renderer) {
	g := s.current
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] {
				r.DrawCell(x, y)
			}
		}
	}
}

// Current returns the current generation. Callers must not mutate it.
func (s *Simulator) Current() *Grid {
	return s.current
}

// Generation returns how many steps have run since Initialize or Load
func (s *Simulator) Generation() int {
	return s.generation
}

// Population returns the number of live cells in the current generation
func (s *Simulator) Population() int {
	return s.current.CountLivingCells()
}
