package runner

import (
	"testing"
	"time"

	"lifeplane/internal/core"
)

func TestCommandsAreOrdered(t *testing.T) {
	cells := core.NewCellSet()
	r := New(cells, Options{FPS: 10}, nil)
	defer r.Close()

	r.Toggle(core.Coord{X: 0, Y: 0})
	r.Toggle(core.Coord{X: 1, Y: 0})
	r.Toggle(core.Coord{X: 2, Y: 0})

	// Status round-trips through the queue, so it observes every toggle.
	if st := r.Status(); st.LiveCells != 3 {
		t.Fatalf("expected 3 live cells, got %d", st.LiveCells)
	}

	r.Toggle(core.Coord{X: 0, Y: 0})
	if st := r.Status(); st.LiveCells != 2 {
		t.Fatalf("expected 2 live cells after re-toggle, got %d", st.LiveCells)
	}
}

func TestStepOnce(t *testing.T) {
	cells := core.NewCellSet()
	for _, c := range []core.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}} {
		cells.Set(c, true)
	}
	r := New(cells, Options{FPS: 10}, nil)
	defer r.Close()

	r.StepOnce()

	st := r.Status()
	if st.Generation != 1 || st.State != StateIdle {
		t.Fatalf("unexpected status %+v", st)
	}
	snap := r.Snapshot()
	for _, c := range []core.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}} {
		if !snap.Contains(c) {
			t.Fatalf("blinker did not rotate, missing %v", c)
		}
	}
}

// Toggles issued between steps must be picked up by the engine's candidate
// set, even far away from the existing population.
func TestToggleBetweenStepsIsEvaluated(t *testing.T) {
	cells := core.NewCellSet()
	for _, c := range []core.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}} {
		cells.Set(c, true)
	}
	r := New(cells, Options{FPS: 10}, nil)
	defer r.Close()

	r.StepOnce()
	block := []core.Coord{{X: 50, Y: 50}, {X: 51, Y: 50}, {X: 50, Y: 51}, {X: 51, Y: 51}}
	for _, c := range block {
		r.Toggle(c)
	}
	r.StepOnce()

	snap := r.Snapshot()
	for _, c := range block {
		if !snap.Contains(c) {
			t.Fatalf("block cell %v drawn between steps was dropped", c)
		}
	}
}

func TestRunFinishesOnExtinction(t *testing.T) {
	cells := core.NewCellSet()
	cells.Set(core.Coord{X: 0, Y: 0}, true)
	cells.Set(core.Coord{X: 1, Y: 0}, true)

	statusCh := make(chan Status, 16)
	r := New(cells, Options{FPS: 30}, statusCh)
	defer r.Close()

	r.Run()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case st := <-statusCh:
			if st.State == StateFinished {
				if st.LiveCells != 0 {
					t.Fatalf("finished with %d live cells", st.LiveCells)
				}
				if st.Generation != 1 {
					t.Fatalf("a lonely domino should die in one generation, got %d", st.Generation)
				}
				return
			}
		case <-deadline:
			t.Fatal("runner never finished")
		}
	}
}

func TestRunFinishesAtStepLimit(t *testing.T) {
	cells := core.NewCellSet()
	for _, c := range []core.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}} {
		cells.Set(c, true)
	}

	statusCh := make(chan Status, 16)
	r := New(cells, Options{FPS: 60, MaxSteps: 3}, statusCh)
	defer r.Close()

	r.Run()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case st := <-statusCh:
			if st.State == StateFinished {
				if st.Generation != 3 {
					t.Fatalf("expected to stop at generation 3, got %d", st.Generation)
				}
				return
			}
		case <-deadline:
			t.Fatal("runner never hit the step limit")
		}
	}
}

func TestStopCancelsPendingSteps(t *testing.T) {
	cells := core.NewCellSet()
	for _, c := range []core.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}} {
		cells.Set(c, true)
	}
	r := New(cells, Options{FPS: 60}, nil)
	defer r.Close()

	r.Run()
	r.Stop()

	gen := r.Status().Generation
	time.Sleep(100 * time.Millisecond)
	if got := r.Status().Generation; got != gen {
		t.Fatalf("a generation fired after Stop: %d -> %d", gen, got)
	}
}

func TestClearStopsAndEmpties(t *testing.T) {
	cells := core.NewCellSet()
	r := New(cells, Options{FPS: 10}, nil)
	defer r.Close()

	r.Randomize(core.Coord{X: 0, Y: 0}, core.Coord{X: 9, Y: 9}, 0.5, 1)
	if st := r.Status(); st.LiveCells == 0 {
		t.Fatal("randomize produced no cells")
	}

	r.Clear()
	st := r.Status()
	if st.LiveCells != 0 || st.State != StateIdle {
		t.Fatalf("unexpected status after clear: %+v", st)
	}
}

func TestPanAndToLogical(t *testing.T) {
	cells := core.NewCellSet()
	r := New(cells, Options{FPS: 10}, nil)
	defer r.Close()

	r.Pan(5, -2)
	if off := r.Offset(); off != (core.Coord{X: 5, Y: -2}) {
		t.Fatalf("unexpected offset %v", off)
	}
	if got := r.ToLogical(core.Coord{X: 5, Y: -2}); got != (core.Coord{}) {
		t.Fatalf("expected logical origin, got %v", got)
	}
}
