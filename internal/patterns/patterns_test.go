package patterns

import (
	"testing"

	"lifeplane/internal/core"
)

func TestRegistryLookup(t *testing.T) {
	for _, name := range []string{"blinker", "block", "toad", "glider", "r-pentomino"} {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("pattern %q not registered", name)
		}
	}
	if _, ok := Lookup("no-such-pattern"); ok {
		t.Fatal("lookup of an unknown pattern succeeded")
	}

	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestStampTranslates(t *testing.T) {
	p, _ := Lookup("block")
	s := core.NewCellSet()
	origin := core.Coord{X: -10, Y: 20}
	p.Stamp(s, origin)

	if s.Len() != len(p.Cells) {
		t.Fatalf("expected %d cells, got %d", len(p.Cells), s.Len())
	}
	for _, c := range p.Cells {
		if !s.Contains(origin.Add(c)) {
			t.Fatalf("missing cell %v", origin.Add(c))
		}
	}
}

func TestBlinkerPatternOscillates(t *testing.T) {
	p, _ := Lookup("blinker")
	s := core.NewCellSet()
	p.Stamp(s, core.Coord{})

	e := core.NewEngine(s)
	e.Step()
	e.Step()

	for _, c := range p.Cells {
		if !s.Contains(c) {
			t.Fatalf("blinker did not return to its seed after two steps, missing %v", c)
		}
	}
	if s.Len() != len(p.Cells) {
		t.Fatalf("expected %d cells after a full period, got %d", len(p.Cells), s.Len())
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	min := core.Coord{X: 0, Y: 0}
	max := core.Coord{X: 19, Y: 19}

	a := core.NewCellSet()
	b := core.NewCellSet()
	Randomize(a, min, max, 0.3, 99)
	Randomize(b, min, max, 0.3, 99)
	if !a.Equal(b) {
		t.Fatal("same seed should produce the same fill")
	}

	empty := core.NewCellSet()
	Randomize(empty, min, max, 0, 99)
	if empty.Len() != 0 {
		t.Fatalf("density 0 should add nothing, got %d", empty.Len())
	}

	full := core.NewCellSet()
	Randomize(full, min, max, 1, 99)
	if full.Len() != 400 {
		t.Fatalf("density 1 should fill the rectangle, got %d", full.Len())
	}
}
