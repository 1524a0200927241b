package core

// Coord identifies one cell on the infinite grid.
type Coord struct {
	X int
	Y int
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

// Sub returns c translated by -d.
func (c Coord) Sub(d Coord) Coord { return Coord{X: c.X - d.X, Y: c.Y - d.Y} }

// Neighbors returns the Moore neighborhood of c.
func (c Coord) Neighbors() [8]Coord {
	return [8]Coord{
		{c.X - 1, c.Y - 1}, {c.X, c.Y - 1}, {c.X + 1, c.Y - 1},
		{c.X - 1, c.Y}, {c.X + 1, c.Y},
		{c.X - 1, c.Y + 1}, {c.X, c.Y + 1}, {c.X + 1, c.Y + 1},
	}
}

// Closure returns c together with its Moore neighborhood. Cells in the
// closure of any live cell are the only ones whose state can change on the
// next generation.
func (c Coord) Closure() [9]Coord {
	return [9]Coord{
		{c.X - 1, c.Y - 1}, {c.X, c.Y - 1}, {c.X + 1, c.Y - 1},
		{c.X - 1, c.Y}, {c.X, c.Y}, {c.X + 1, c.Y},
		{c.X - 1, c.Y + 1}, {c.X, c.Y + 1}, {c.X + 1, c.Y + 1},
	}
}
