package core

// Mode selects what a pointer drag does. Drawing and panning are mutually
// exclusive; a gesture is interpreted under exactly one mode.
type Mode int

const (
	// ModeDraw toggles cells under the pointer.
	ModeDraw Mode = iota
	// ModePan translates the viewport.
	ModePan
)

// Action is what one pointer sample asks the caller to do. In draw mode
// Paint is set together with the screen-space cell to toggle; in pan mode
// PanX/PanY carry a whole-cell pan delta.
type Action struct {
	Paint bool
	Cell  Coord
	PanX  int
	PanY  int
}

// Gesture holds the state of a single pointer drag: the mode it started
// under, the last cell painted, and the sub-cell pan remainder. It replaces
// ambient mouse-tracking globals with a value scoped to the input adapter.
type Gesture struct {
	mode   Mode
	active bool

	lastCell Coord
	hasCell  bool

	lastPX, lastPY int
	remX, remY     int
}

// Mode returns the current interaction mode.
func (g *Gesture) Mode() Mode { return g.mode }

// SetMode switches the interaction mode, ending any drag in progress so a
// single gesture can never mix drawing and panning.
func (g *Gesture) SetMode(m Mode) {
	g.End()
	g.mode = m
}

// Active reports whether a drag is in progress.
func (g *Gesture) Active() bool { return g.active }

// Begin starts a drag at pixel position (px, py). In draw mode the cell
// under the pointer is painted right away; in pan mode the sample only
// establishes the baseline and moves nothing.
func (g *Gesture) Begin(px, py, scale int) Action {
	g.active = true
	g.lastPX, g.lastPY = px, py
	g.remX, g.remY = 0, 0
	g.hasCell = false
	if g.mode != ModeDraw {
		return Action{}
	}
	cell := CellAt(px, py, scale)
	g.lastCell = cell
	g.hasCell = true
	return Action{Paint: true, Cell: cell}
}

// Move feeds a pointer-move sample. Draw mode paints only when the pointer
// has crossed into a different cell, so re-entering the same cell during a
// drag is a no-op. Pan mode converts the pixel delta into whole cells and
// carries the remainder into the next sample.
func (g *Gesture) Move(px, py, scale int) Action {
	if !g.active {
		return Action{}
	}
	if scale < 1 {
		scale = 1
	}
	switch g.mode {
	case ModeDraw:
		cell := CellAt(px, py, scale)
		if g.hasCell && cell == g.lastCell {
			return Action{}
		}
		g.lastCell = cell
		g.hasCell = true
		return Action{Paint: true, Cell: cell}
	case ModePan:
		g.remX += px - g.lastPX
		g.remY += py - g.lastPY
		g.lastPX, g.lastPY = px, py
		dx := g.remX / scale
		dy := g.remY / scale
		g.remX -= dx * scale
		g.remY -= dy * scale
		return Action{PanX: dx, PanY: dy}
	}
	return Action{}
}

// End finishes the drag.
func (g *Gesture) End() {
	g.active = false
	g.hasCell = false
}

// CellAt maps a pixel position to its screen-space cell index, rounding
// toward negative infinity so cells left or above the origin stay stable.
func CellAt(px, py, scale int) Coord {
	if scale < 1 {
		scale = 1
	}
	return Coord{X: floorDiv(px, scale), Y: floorDiv(py, scale)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
