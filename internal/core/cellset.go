package core

// CellSet is the canonical sparse set of live cells. A coordinate present in
// the set is alive; absence means dead. The dead background is implicit, so
// the set supports an unbounded plane without ever materializing it.
type CellSet struct {
	cells     map[Coord]struct{}
	observers []func()
}

// NewCellSet returns an empty CellSet.
func NewCellSet() *CellSet {
	return &CellSet{cells: make(map[Coord]struct{})}
}

// OnChange registers an observer invoked after every mutation that changes
// membership. Observers must not mutate the set.
func (s *CellSet) OnChange(fn func()) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

func (s *CellSet) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// Contains reports whether c is alive.
func (s *CellSet) Contains(c Coord) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of live cells.
func (s *CellSet) Len() int { return len(s.cells) }

// Toggle flips the liveness of c. Toggling twice restores the original state.
func (s *CellSet) Toggle(c Coord) {
	if _, ok := s.cells[c]; ok {
		delete(s.cells, c)
	} else {
		s.cells[c] = struct{}{}
	}
	s.notify()
}

// Set writes the liveness of c. It notifies only when membership changes.
func (s *CellSet) Set(c Coord, alive bool) {
	_, ok := s.cells[c]
	if alive == ok {
		return
	}
	if alive {
		s.cells[c] = struct{}{}
	} else {
		delete(s.cells, c)
	}
	s.notify()
}

// Clear kills every cell.
func (s *CellSet) Clear() {
	if len(s.cells) == 0 {
		return
	}
	s.cells = make(map[Coord]struct{})
	s.notify()
}

// Each calls fn for every live cell in unspecified order.
func (s *CellSet) Each(fn func(Coord)) {
	for c := range s.cells {
		fn(c)
	}
}

// Coords returns a snapshot of the live cells in unspecified order.
func (s *CellSet) Coords() []Coord {
	out := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	return out
}

// Clone returns an independent copy of the membership. Observers are not
// carried over.
func (s *CellSet) Clone() *CellSet {
	dup := &CellSet{cells: make(map[Coord]struct{}, len(s.cells))}
	for c := range s.cells {
		dup.cells[c] = struct{}{}
	}
	return dup
}

// LiveNeighbors counts the live cells in the Moore neighborhood of c.
func (s *CellSet) LiveNeighbors(c Coord) int {
	n := 0
	for _, nb := range c.Neighbors() {
		if _, ok := s.cells[nb]; ok {
			n++
		}
	}
	return n
}

// Bounds returns the bounding box of the live cells expanded by margin on
// every side. ok is false when the set is empty.
func (s *CellSet) Bounds(margin int) (min, max Coord, ok bool) {
	for c := range s.cells {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	if !ok {
		return
	}
	min.X -= margin
	min.Y -= margin
	max.X += margin
	max.Y += margin
	return
}

// Equal reports whether both sets hold exactly the same live cells.
func (s *CellSet) Equal(other *CellSet) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// replace swaps in a freshly computed generation. The engine builds the next
// generation into a new map so the previous one stays intact for neighbor
// counting during the transition.
func (s *CellSet) replace(cells map[Coord]struct{}) {
	s.cells = cells
	s.notify()
}
