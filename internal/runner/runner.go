// Package runner drives the simulation for frontends that are not built
// around a polling game loop. Every mutation — generation steps, edits,
// pans, clears — is funneled through a single command queue executed by one
// goroutine, so the engine and store never see concurrent writers.
package runner

import (
	"time"

	"lifeplane/internal/core"
	"lifeplane/internal/patterns"
)

// State is the runner's lifecycle position.
type State int

const (
	// StateIdle means no step is scheduled.
	StateIdle State = iota
	// StateRunning means steps fire at the configured rate.
	StateRunning
	// StateFinished means the run ended on extinction or the step limit.
	StateFinished
)

// Status is a point-in-time snapshot of the simulation.
type Status struct {
	Generation int
	LiveCells  int
	StepTime   time.Duration
	State      State
}

// Options configures a Runner.
type Options struct {
	FPS      int // steps per second, clamped to the configuration bounds
	MaxSteps int // stop after this many generations; 0 means unlimited
	Workers  int // engine evaluation workers
}

// Frame is a consistent snapshot handed to viewers on every change. Cells
// is an independent clone, so viewers may read it at their leisure.
type Frame struct {
	Cells  *core.CellSet
	Offset core.Coord
	Status Status
}

// Viewer is notified whenever the simulation state changes. Refresh is
// called from the runner's own goroutine and must not call back into the
// runner synchronously.
type Viewer interface {
	Refresh(Frame)
}

// Runner owns a CellSet, an Engine and a Viewport and serializes all access
// to them. Command methods return immediately; read methods round-trip
// through the queue so they observe every previously issued command.
type Runner struct {
	cells  *core.CellSet
	engine *core.Engine
	view   *core.Viewport

	opts   Options
	status Status

	statusCh chan Status
	cmdCh    chan func()
	closeCh  chan struct{}
	stopTick chan struct{}

	viewers []Viewer
}

// New starts a runner over the provided store. statusCh may be nil; when set
// the runner publishes a Status after every state change and the caller must
// drain it.
func New(cells *core.CellSet, opts Options, statusCh chan Status) *Runner {
	opts.FPS = core.ClampFPS(opts.FPS)
	engine := core.NewEngine(cells)
	engine.Workers = opts.Workers
	r := &Runner{
		cells:    cells,
		engine:   engine,
		view:     core.NewViewport(),
		opts:     opts,
		statusCh: statusCh,
		cmdCh:    make(chan func(), 16),
		closeCh:  make(chan struct{}),
	}
	r.status.LiveCells = cells.Len()
	go r.loop()
	return r
}

func (r *Runner) loop() {
	for {
		select {
		case cmd := <-r.cmdCh:
			cmd()
		case <-r.closeCh:
			r.stopTicker()
			return
		}
	}
}

// Close terminates the command loop. No method may be called afterwards.
func (r *Runner) Close() { close(r.closeCh) }

// RegisterViewer subscribes a viewer to change notifications.
func (r *Runner) RegisterViewer(v Viewer) {
	r.cmdCh <- func() {
		r.viewers = append(r.viewers, v)
		v.Refresh(r.frame())
	}
}

// Options returns the runner configuration.
func (r *Runner) Options() Options { return r.opts }

// Run starts stepping at the configured rate. The first generation is
// computed immediately, the rest fire from a ticker. A no-op while running.
func (r *Runner) Run() {
	r.cmdCh <- func() {
		if r.status.State == StateRunning {
			return
		}
		r.status.State = StateRunning
		r.engine.Start()
		r.afterStep(0)
		if r.maybeFinish() {
			return
		}
		stop := make(chan struct{})
		r.stopTick = stop
		interval := time.Second / time.Duration(r.opts.FPS)
		go func() {
			t := time.NewTicker(interval)
			defer t.Stop()
			for {
				select {
				case <-t.C:
					r.cmdCh <- r.tick
				case <-stop:
					return
				}
			}
		}()
	}
}

// tick runs inside the command loop. A tick queued before Stop was processed
// finds the runner idle and does nothing, so no generation can fire after
// cancellation.
func (r *Runner) tick() {
	if r.status.State != StateRunning {
		return
	}
	start := time.Now()
	r.engine.Step()
	r.afterStep(time.Since(start))
	r.maybeFinish()
}

// Stop cancels the scheduled stepping and pauses the engine.
func (r *Runner) Stop() {
	r.cmdCh <- func() {
		if r.status.State != StateRunning {
			return
		}
		r.stopTicker()
		r.engine.Pause()
		r.status.State = StateIdle
		r.publish()
	}
}

// StepOnce advances a single generation while idle.
func (r *Runner) StepOnce() {
	r.cmdCh <- func() {
		if r.status.State == StateRunning {
			return
		}
		r.status.State = StateIdle
		start := time.Now()
		r.engine.Step()
		r.afterStep(time.Since(start))
	}
}

// Clear stops the run and kills every cell.
func (r *Runner) Clear() {
	r.cmdCh <- func() {
		r.stopTicker()
		r.engine.Pause()
		r.cells.Clear()
		r.status.State = StateIdle
		r.status.LiveCells = 0
		r.publish()
		r.refreshViewers()
	}
}

// Toggle flips one logical cell.
func (r *Runner) Toggle(c core.Coord) {
	r.cmdCh <- func() {
		r.cells.Toggle(c)
		r.engine.Touch(c)
		r.status.LiveCells = r.cells.Len()
		r.refreshViewers()
	}
}

// Pan translates the viewport by whole cells.
func (r *Runner) Pan(dx, dy int) {
	r.cmdCh <- func() {
		r.view.Pan(dx, dy)
		r.refreshViewers()
	}
}

// Randomize stops the run and seeds the rectangle [min, max] at the given
// density.
func (r *Runner) Randomize(min, max core.Coord, density float64, seed int64) {
	r.cmdCh <- func() {
		r.stopTicker()
		r.engine.Pause()
		r.status.State = StateIdle
		patterns.Randomize(r.cells, min, max, density, seed)
		r.status.LiveCells = r.cells.Len()
		r.publish()
		r.refreshViewers()
	}
}

// Status returns a snapshot consistent with every command issued before it.
func (r *Runner) Status() Status {
	reply := make(chan Status, 1)
	r.cmdCh <- func() { reply <- r.status }
	return <-reply
}

// Snapshot returns an independent copy of the live cells.
func (r *Runner) Snapshot() *core.CellSet {
	reply := make(chan *core.CellSet, 1)
	r.cmdCh <- func() { reply <- r.cells.Clone() }
	return <-reply
}

// Offset returns the current viewport translation.
func (r *Runner) Offset() core.Coord {
	reply := make(chan core.Coord, 1)
	r.cmdCh <- func() { reply <- r.view.Offset() }
	return <-reply
}

// ToLogical maps a screen-space cell index through the viewport.
func (r *Runner) ToLogical(c core.Coord) core.Coord {
	reply := make(chan core.Coord, 1)
	r.cmdCh <- func() { reply <- r.view.ToLogical(c) }
	return <-reply
}

func (r *Runner) stopTicker() {
	if r.stopTick != nil {
		close(r.stopTick)
		r.stopTick = nil
	}
}

func (r *Runner) afterStep(elapsed time.Duration) {
	r.status.Generation = r.engine.Generation()
	r.status.LiveCells = r.cells.Len()
	r.status.StepTime = elapsed
	r.publish()
	r.refreshViewers()
}

func (r *Runner) maybeFinish() bool {
	if r.status.State != StateRunning {
		return false
	}
	extinct := r.cells.Len() == 0
	capped := r.opts.MaxSteps > 0 && r.engine.Generation() >= r.opts.MaxSteps
	if !extinct && !capped {
		return false
	}
	r.stopTicker()
	r.engine.Pause()
	r.status.State = StateFinished
	r.publish()
	r.refreshViewers()
	return true
}

func (r *Runner) publish() {
	if r.statusCh != nil {
		r.statusCh <- r.status
	}
}

func (r *Runner) frame() Frame {
	return Frame{Cells: r.cells.Clone(), Offset: r.view.Offset(), Status: r.status}
}

func (r *Runner) refreshViewers() {
	if len(r.viewers) == 0 {
		return
	}
	f := r.frame()
	for _, v := range r.viewers {
		v.Refresh(f)
	}
}
