package core

import "testing"

func TestToggleInvolution(t *testing.T) {
	s := NewCellSet()
	c := Coord{X: -3, Y: 7}

	s.Toggle(c)
	if !s.Contains(c) {
		t.Fatalf("cell %v should be alive after first toggle", c)
	}
	s.Toggle(c)
	if s.Contains(c) {
		t.Fatalf("cell %v should be dead after second toggle", c)
	}

	s.Set(Coord{X: 0, Y: 0}, true)
	before := s.Len()
	s.Toggle(c)
	s.Toggle(c)
	if s.Len() != before {
		t.Fatalf("double toggle changed set size: %d != %d", s.Len(), before)
	}
}

func TestSetIsAbsolute(t *testing.T) {
	s := NewCellSet()
	c := Coord{X: 1, Y: 1}

	s.Set(c, true)
	s.Set(c, true)
	if !s.Contains(c) || s.Len() != 1 {
		t.Fatalf("repeated Set(true) should leave exactly one live cell, got %d", s.Len())
	}
	s.Set(c, false)
	if s.Contains(c) {
		t.Fatal("Set(false) should kill the cell")
	}
}

func TestClear(t *testing.T) {
	s := NewCellSet()
	s.Set(Coord{X: 5, Y: 5}, true)
	s.Set(Coord{X: -5, Y: -5}, true)
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty set after Clear, got %d cells", s.Len())
	}
}

func TestOnChangeNotifications(t *testing.T) {
	s := NewCellSet()
	fired := 0
	s.OnChange(func() { fired++ })

	s.Toggle(Coord{X: 0, Y: 0}) // 1
	s.Set(Coord{X: 1, Y: 0}, true)
	s.Set(Coord{X: 1, Y: 0}, true) // no change, no notification
	s.Clear()
	s.Clear() // already empty, no notification

	if fired != 3 {
		t.Fatalf("expected 3 notifications, got %d", fired)
	}
}

func TestBounds(t *testing.T) {
	s := NewCellSet()
	if _, _, ok := s.Bounds(2); ok {
		t.Fatal("empty set should have no bounds")
	}

	s.Set(Coord{X: -2, Y: 3}, true)
	s.Set(Coord{X: 4, Y: -1}, true)
	min, max, ok := s.Bounds(2)
	if !ok {
		t.Fatal("expected bounds for non-empty set")
	}
	if min != (Coord{X: -4, Y: -3}) || max != (Coord{X: 6, Y: 5}) {
		t.Fatalf("unexpected bounds: min=%v max=%v", min, max)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewCellSet()
	s.Set(Coord{X: 1, Y: 2}, true)

	dup := s.Clone()
	dup.Toggle(Coord{X: 9, Y: 9})

	if s.Contains(Coord{X: 9, Y: 9}) {
		t.Fatal("mutating the clone leaked into the original")
	}
	if !dup.Contains(Coord{X: 1, Y: 2}) {
		t.Fatal("clone lost a cell")
	}
}

func TestLiveNeighbors(t *testing.T) {
	s := NewCellSet()
	center := Coord{X: 0, Y: 0}
	for _, n := range center.Neighbors() {
		s.Set(n, true)
	}
	if got := s.LiveNeighbors(center); got != 8 {
		t.Fatalf("expected 8 live neighbors, got %d", got)
	}
	if got := s.LiveNeighbors(Coord{X: 5, Y: 5}); got != 0 {
		t.Fatalf("expected 0 live neighbors far away, got %d", got)
	}
}
