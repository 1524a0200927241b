package core

// Viewport tracks the pan translation between screen-space cell indices and
// logical grid coordinates. The offset is held in cell units; panning only
// changes the mapping, never the cells themselves.
type Viewport struct {
	offset    Coord
	observers []func()
}

// NewViewport returns a viewport with a zero offset.
func NewViewport() *Viewport { return &Viewport{} }

// OnChange registers an observer invoked after every pan.
func (v *Viewport) OnChange(fn func()) {
	if fn != nil {
		v.observers = append(v.observers, fn)
	}
}

// Pan accumulates a pan delta, in cells.
func (v *Viewport) Pan(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	v.offset.X += dx
	v.offset.Y += dy
	for _, fn := range v.observers {
		fn()
	}
}

// Offset returns the accumulated translation.
func (v *Viewport) Offset() Coord { return v.offset }

// ToLogical maps a screen-space cell index to its logical grid coordinate.
func (v *Viewport) ToLogical(c Coord) Coord { return c.Sub(v.offset) }

// ToScreen maps a logical grid coordinate to its screen-space cell index.
// It is the exact inverse of ToLogical.
func (v *Viewport) ToScreen(c Coord) Coord { return c.Add(v.offset) }
