//go:build ebiten

package render

import (
	"image/color"

	"lifeplane/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter rasterizes the window of the plane visible through the viewport
// into a single image, one pixel per cell, and draws it scaled up. The
// raster is rebuilt only after the cells, the offset or the scale changed.
type Painter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	dirty bool

	onColor  color.Color
	offColor color.Color
}

// NewPainter allocates a painter with the default palette.
func NewPainter() *Painter {
	return &Painter{dirty: true, onColor: color.White, offColor: color.Black}
}

// Invalidate marks the raster stale. Wire it to the change notifications of
// the store and the viewport.
func (p *Painter) Invalidate() { p.dirty = true }

// Draw renders the cells visible in a pxW*pxH pixel window onto dst.
func (p *Painter) Draw(dst *ebiten.Image, cells *core.CellSet, view *core.Viewport, scale, pxW, pxH int) {
	if scale < 1 {
		scale = 1
	}
	w := (pxW + scale - 1) / scale
	h := (pxH + scale - 1) / scale
	if p.img == nil || p.w != w || p.h != h {
		p.w, p.h = w, h
		p.img = ebiten.NewImage(w, h)
		p.buf = make([]byte, 4*w*h)
		p.dirty = true
	}
	if p.dirty {
		fillCellsRGBA(p.buf, w, h, func(x, y int) bool {
			return cells.Contains(view.ToLogical(core.Coord{X: x, Y: y}))
		}, p.onColor, p.offColor)
		p.img.ReplacePixels(p.buf)
		p.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}
