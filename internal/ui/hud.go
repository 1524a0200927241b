//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lifeplane/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control panel to the right of the field and applies
// clicks on its +/- buttons back to the parameter source.
type HUD struct {
	src    core.ParameterSource
	status core.StatusLinesProvider

	width      int
	panel      *ebiten.Image
	pixel      *ebiten.Image
	lastHeight int
	offsetX    int

	controls []controlState
}

// NewHUD constructs a HUD for the provided parameter source and panel width.
func NewHUD(src core.ParameterSource, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if sp, ok := src.(core.StatusLinesProvider); ok {
		h.status = sp
	}
	controls := src.ParameterControls()
	h.controls = make([]controlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = controlState{control: ctrl}
	}
	layoutControls(h.controls, h.width)
	return h
}

// Update refreshes the cached parameter values and handles HUD clicks.
// offsetX is the screen x where the panel starts.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	for i := range h.controls {
		if v, ok := h.src.IntParameter(h.controls[i].control.Key); ok {
			h.controls[i].value = v
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		if pointInRect(px, my, state.minusRect) {
			h.adjust(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.adjust(state, 1)
			return
		}
	}
}

func (h *HUD) adjust(state *controlState, direction int) {
	target := adjustTarget(state.control, state.value, direction)
	if target == state.value {
		return
	}
	if h.src.SetIntParameter(state.control.Key, target) {
		state.value = target
	}
}

// Draw paints the panel anchored at offsetX with the given pixel height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Controls", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + headerBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value := strconv.Itoa(state.value)
		bounds := text.BoundString(face, value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, value, face, valueX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		h.drawButton(state.minusRect, "-", state.value > state.control.Min)
		h.drawButton(state.plusRect, "+", state.value < state.control.Max)
	}

	if h.status != nil {
		y := controlsTop + len(h.controls)*lineHeight + statusSpacing
		for _, line := range h.status.StatusLines() {
			text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			y += statusSpacing
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

