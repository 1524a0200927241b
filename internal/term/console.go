// Package term is a gocui frontend over the runner: a field view with mouse
// editing, arrow-key panning and run/stop/step/clear keybindings.
package term

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"lifeplane/internal/core"
	"lifeplane/internal/runner"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

var stateDescr = map[runner.State]string{
	runner.StateIdle:     aurora.Colorize("paused", aurora.BlueFg).String(),
	runner.StateRunning:  aurora.Colorize("running", aurora.CyanFg).String(),
	runner.StateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
}

// ConsoleUI renders the simulation into the terminal and forwards key and
// mouse events to the runner. The runner pushes frames from its own
// goroutine while gocui handlers run in the UI loop, so the latest frame is
// kept behind a mutex.
type ConsoleUI struct {
	run  *runner.Runner
	g    *gocui.Gui
	keys []keyBinding

	mu    sync.Mutex
	frame runner.Frame

	liveFiller string
	deadFiller string

	density float64
	seed    int64
}

// NewConsoleUI builds the terminal UI over the provided runner.
func NewConsoleUI(run *runner.Runner, density float64, seed int64) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "init terminal ui")
	}
	t := &ConsoleUI{
		run:        run,
		g:          g,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "·",
		density:    density,
		seed:       seed,
	}
	t.frame.Cells = core.NewCellSet()
	t.g.Mouse = true

	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "quit", t.cmdQuit, ""},
		{'n', "N", "step", t.cmdStep, ""},
		{'r', "R", "run", t.cmdRun, ""},
		{'s', "S", "stop", t.cmdStop, ""},
		{'c', "C", "clear", t.cmdClear, ""},
		{'w', "W", "random fill", t.cmdRandomize, ""},
		{gocui.KeyArrowLeft, "arrows", "pan", t.cmdPan(1, 0), ""},
		{gocui.KeyArrowRight, "", "", t.cmdPan(-1, 0), ""},
		{gocui.KeyArrowUp, "", "", t.cmdPan(0, 1), ""},
		{gocui.KeyArrowDown, "", "", t.cmdPan(0, -1), ""},
		{gocui.MouseLeft, "MOUSE", "toggle cell", t.cmdToggle, "field"},
	}
	t.g.SetManagerFunc(t.layout)
	for _, kb := range t.keys {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error {
			return h(v)
		}); err != nil {
			return nil, errors.Wrapf(err, "bind %v", kb.key)
		}
	}
	return t, nil
}

// Start runs the UI main loop until the user quits.
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "terminal ui")
	}
	return nil
}

// Refresh stores the latest frame and schedules a redraw. Called by the
// runner after every change; the actual drawing happens in the gocui loop.
func (t *ConsoleUI) Refresh(f runner.Frame) {
	t.mu.Lock()
	t.frame = f
	t.mu.Unlock()
	t.g.Update(func(*gocui.Gui) error { return nil })
}

func (t *ConsoleUI) snapshot() runner.Frame {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frame
}

func (t *ConsoleUI) render(g *gocui.Gui) {
	f := t.snapshot()
	t.renderField(g, f)
	t.renderStatus(g, f)
	t.renderConfiguration(g, f)
}

func (t *ConsoleUI) renderField(g *gocui.Gui, f runner.Frame) {
	v, err := g.View("field")
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	var b bytes.Buffer
	for y := 0; y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < maxW; x++ {
			logical := core.Coord{X: x, Y: y}.Sub(f.Offset)
			if f.Cells.Contains(logical) {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui, f runner.Frame) {
	v, err := g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, t.prop("Generation", "%v", f.Status.Generation))
	_, _ = fmt.Fprintln(v, t.prop("Live cells", "%v", f.Status.LiveCells))
	_, _ = fmt.Fprintln(v, t.prop("Step time", "%v", f.Status.StepTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, t.prop("State", "%v", stateDescr[f.Status.State]))
}

func (t *ConsoleUI) renderConfiguration(g *gocui.Gui, f runner.Frame) {
	v, err := g.View("configuration")
	if err != nil {
		return
	}
	opts := t.run.Options()
	v.Clear()
	_, _ = fmt.Fprintln(v, t.prop("Rate", "%v/s", opts.FPS))
	_, _ = fmt.Fprintln(v, t.prop("Workers", "%v", opts.Workers))
	_, _ = fmt.Fprintln(v, t.prop("Offset", "%v,%v", f.Offset.X, f.Offset.Y))
}

func (t *ConsoleUI) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+format, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 24

	if v, err := g.SetView("configuration", 0, 0, leftColumnWidth, (maxY-3)/2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}

	if v, err := g.SetView("status", 0, (maxY-3)/2+1, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Plane"
		v.Frame = true
	}
	t.render(g)

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		first := true
		for _, k := range t.keys {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error { return gocui.ErrQuit }

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.run.StepOnce()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.run.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.run.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.run.Clear()
	return nil
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	offset := t.snapshot().Offset
	min := core.Coord{X: 0, Y: 0}.Sub(offset)
	max := core.Coord{X: 39, Y: 19}.Sub(offset)
	t.run.Randomize(min, max, t.density, t.seed)
	t.seed++
	return nil
}

func (t *ConsoleUI) cmdPan(dx, dy int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		t.run.Pan(dx, dy)
		return nil
	}
}

func (t *ConsoleUI) cmdToggle(v *gocui.View) error {
	cx, cy := v.Cursor()
	logical := core.Coord{X: cx, Y: cy}.Sub(t.snapshot().Offset)
	t.run.Toggle(logical)
	return nil
}
