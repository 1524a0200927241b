//go:build ebiten

package app

import (
	"fmt"

	"lifeplane/internal/core"
	"lifeplane/internal/patterns"
	"lifeplane/internal/render"
	"lifeplane/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the pixel width of the control panel right of the field.
const hudWidth = 200

// Game adapts the simulation core to the ebiten.Game interface. It owns the
// store, the engine, the viewport and the gesture state, and is the single
// execution context for both user edits and generation steps.
type Game struct {
	cells   *core.CellSet
	engine  *core.Engine
	view    *core.Viewport
	gesture core.Gesture
	clock   *core.FixedStep
	painter *render.Painter
	hud     *ui.HUD

	fps    int
	scale  int
	fieldW int
	fieldH int
}

// New constructs a Game from the provided configuration.
func New(cfg *Config) *Game {
	cfg.Clamp()
	g := &Game{
		cells:   core.NewCellSet(),
		view:    core.NewViewport(),
		clock:   core.NewFixedStep(cfg.FPS),
		painter: render.NewPainter(),
		fps:     cfg.FPS,
		scale:   cfg.Scale,
		fieldW:  cfg.Width,
		fieldH:  cfg.Height,
	}
	g.engine = core.NewEngine(g.cells)
	g.engine.Workers = cfg.Workers

	// Put the logical origin at the center of the initial view.
	g.view.Pan(g.fieldW/g.scale/2, g.fieldH/g.scale/2)
	if p, ok := patterns.Lookup(cfg.Pattern); ok {
		p.Stamp(g.cells, core.Coord{})
	}

	g.cells.OnChange(g.painter.Invalidate)
	g.view.OnChange(g.painter.Invalidate)
	g.hud = ui.NewHUD(g, hudWidth)
	return g
}

// Update handles input and advances the simulation when a step is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.Running() {
			g.engine.Pause()
		} else {
			g.engine.Start()
			g.clock.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.engine.Running() {
		g.engine.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.Pause()
		g.cells.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.gesture.Mode() == core.ModeDraw {
			g.gesture.SetMode(core.ModePan)
		} else {
			g.gesture.SetMode(core.ModeDraw)
		}
	}

	g.handlePointer()
	g.hud.Update(g.fieldW)

	if g.engine.Running() && g.clock.ShouldStep() {
		g.engine.Step()
	}
	return nil
}

// handlePointer feeds mouse samples into the gesture. The HUD owns clicks
// right of the field, so drags never start there.
func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if mx >= g.fieldW {
			return
		}
		g.apply(g.gesture.Begin(mx, my, g.scale))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.gesture.Active():
		g.apply(g.gesture.Move(mx, my, g.scale))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.gesture.End()
	}
}

func (g *Game) apply(a core.Action) {
	if a.Paint {
		logical := g.view.ToLogical(a.Cell)
		g.cells.Toggle(logical)
		g.engine.Touch(logical)
	}
	if a.PanX != 0 || a.PanY != 0 {
		g.view.Pan(a.PanX, a.PanY)
	}
}

// Draw renders the visible window of the plane and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.cells, g.view, g.scale, g.fieldW, g.fieldH)
	g.hud.Draw(screen, g.fieldW, g.fieldH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fieldW + hudWidth, g.fieldH
}

// ParameterControls exposes the live-adjustable parameters to the HUD.
func (g *Game) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fps", Label: "Speed", Step: 1, Min: core.MinFPS, Max: core.MaxFPS},
		{Key: "scale", Label: "Cell size", Step: 1, Min: core.MinScale, Max: core.MaxScale},
	}
}

// IntParameter reads a parameter value by key.
func (g *Game) IntParameter(key string) (int, bool) {
	switch key {
	case "fps":
		return g.fps, true
	case "scale":
		return g.scale, true
	}
	return 0, false
}

// SetIntParameter applies a HUD adjustment. Changing the scale only changes
// the screen mapping, so it invalidates the painter but never touches the
// cells.
func (g *Game) SetIntParameter(key string, value int) bool {
	switch key {
	case "fps":
		g.fps = core.ClampFPS(value)
		g.clock.SetFPS(g.fps)
		return true
	case "scale":
		g.scale = core.ClampScale(value)
		g.painter.Invalidate()
		return true
	}
	return false
}

// StatusLines reports the interaction mode and simulation state for the HUD.
func (g *Game) StatusLines() []string {
	mode := "draw"
	if g.gesture.Mode() == core.ModePan {
		mode = "pan"
	}
	state := "paused"
	if g.engine.Running() {
		state = "running"
	}
	return []string{
		fmt.Sprintf("mode: %s (M)", mode),
		fmt.Sprintf("state: %s (Space)", state),
		fmt.Sprintf("generation: %d", g.engine.Generation()),
		fmt.Sprintf("live cells: %d", g.cells.Len()),
	}
}
