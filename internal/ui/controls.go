package ui

import (
	"image"

	"lifeplane/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control core.ParameterControl
	value   int

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// adjustTarget returns the value after one +/- click, moved by the control's
// step and clamped to its bounds. A non-positive step counts as 1.
func adjustTarget(ctrl core.ParameterControl, value, direction int) int {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if target < ctrl.Min {
		target = ctrl.Min
	}
	if target > ctrl.Max {
		target = ctrl.Max
	}
	return target
}

// layoutControls assigns each control a row and right-aligned -/+ button
// rectangles inside a panel of the given width.
func layoutControls(controls []controlState, width int) {
	if len(controls) == 0 || width <= 0 {
		return
	}
	for i := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = top
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
