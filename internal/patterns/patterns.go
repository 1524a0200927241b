package patterns

import (
	"math/rand/v2"
	"sort"

	"lifeplane/internal/core"
)

// Pattern is a named constellation of live cells relative to its own origin.
type Pattern struct {
	Name  string
	Descr string
	Cells []core.Coord
}

// Stamp places the pattern with its origin at the given logical coordinate.
func (p Pattern) Stamp(set *core.CellSet, origin core.Coord) {
	for _, c := range p.Cells {
		set.Set(origin.Add(c), true)
	}
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names returns the registered pattern names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Randomize fills the rectangle [min, max] with live cells at the given
// density, deterministically for a given seed.
func Randomize(set *core.CellSet, min, max core.Coord, density float64, seed int64) {
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			if r.Float64() < density {
				set.Set(core.Coord{X: x, Y: y}, true)
			}
		}
	}
}

func init() {
	Register(Pattern{
		Name:  "blinker",
		Descr: "period-2 oscillator",
		Cells: []core.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	})
	Register(Pattern{
		Name:  "block",
		Descr: "2x2 still life",
		Cells: []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	})
	Register(Pattern{
		Name:  "toad",
		Descr: "period-2 oscillator",
		Cells: []core.Coord{
			{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
			{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		},
	})
	Register(Pattern{
		Name:  "glider",
		Descr: "diagonal spaceship",
		Cells: []core.Coord{
			{X: 1, Y: 0},
			{X: 2, Y: 1},
			{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
		},
	})
	Register(Pattern{
		Name:  "r-pentomino",
		Descr: "long-lived methuselah",
		Cells: []core.Coord{
			{X: 1, Y: 0}, {X: 2, Y: 0},
			{X: 0, Y: 1}, {X: 1, Y: 1},
			{X: 1, Y: 2},
		},
	})
}
