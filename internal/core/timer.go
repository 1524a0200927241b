package core

import "time"

// Bounds for the live-adjustable configuration surface. Values outside are
// clamped before they reach the engine or the scheduler.
const (
	MinFPS   = 1
	MaxFPS   = 60
	MinScale = 5
	MaxScale = 200
)

// ClampFPS bounds a frame rate to [MinFPS, MaxFPS].
func ClampFPS(fps int) int {
	if fps < MinFPS {
		return MinFPS
	}
	if fps > MaxFPS {
		return MaxFPS
	}
	return fps
}

// ClampScale bounds a cell scale to [MinScale, MaxScale].
func ClampScale(scale int) int {
	if scale < MinScale {
		return MinScale
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}

// FixedStep schedules generation steps at a steady frame rate inside a
// polling loop. The rate can be changed live between steps.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep targeting the given frames per second.
// The first step is due one full interval after construction; callers that
// want an immediate generation compute it themselves when starting.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetFPS(fps)
	return fs
}

// SetFPS changes the frame rate, clamped to the configuration bounds. It is
// safe to call from the main loop.
func (f *FixedStep) SetFPS(fps int) {
	f.step = time.Second / time.Duration(ClampFPS(fps))
}

// Interval returns the delay between scheduled steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset drops any accumulated time so the next step lands one full interval
// from now. Used when resuming: Start already computed a generation, and time
// spent paused must not be mistaken for elapsed frames.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether one generation step is due.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Cap the backlog so a stall yields one catch-up step, not a burst.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
