package core

import (
	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the candidate count below which sharding the
// evaluation across workers costs more than it saves.
const parallelThreshold = 4096

// Engine computes successive generations of the standard B3/S23 rule over a
// CellSet. Instead of evaluating the whole plane it keeps a candidate set:
// the closure of every cell that was live last generation. Any cell that can
// change state next generation lies inside that closure, so restricting the
// evaluation never diverges from the brute-force result.
//
// The engine is either Idle or Running. It never advances on its own; the
// caller schedules Step at its chosen rate while Running.
type Engine struct {
	cells      *CellSet
	candidates map[Coord]struct{}
	running    bool
	generation int

	// Workers shards candidate evaluation across that many goroutines when
	// the candidate set is large. Values below 2 keep the serial path.
	// Either way the result is identical; only reads of the previous
	// generation happen concurrently.
	Workers int
}

// NewEngine returns an Idle engine over the provided store.
func NewEngine(cells *CellSet) *Engine {
	return &Engine{cells: cells}
}

// Cells returns the store the engine advances.
func (e *Engine) Cells() *CellSet { return e.cells }

// Running reports whether the engine is between Start and Pause.
func (e *Engine) Running() bool { return e.running }

// Generation returns the number of steps computed so far.
func (e *Engine) Generation() int { return e.generation }

// Start moves the engine to Running, seeds the candidate set from the
// current live cells and computes the first generation immediately.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.seedCandidates()
	e.Step()
}

// Pause moves the engine to Idle and drops the candidate set, so a later
// Start reseeds it from the live set. Edits made while paused are therefore
// always picked up.
func (e *Engine) Pause() {
	e.running = false
	e.candidates = nil
}

// Step computes one generation. The next generation is accumulated into a
// fresh set and swapped in wholesale, and the candidate set is replaced by
// the closure of every cell alive next generation.
func (e *Engine) Step() {
	if len(e.candidates) == 0 && e.cells.Len() > 0 {
		e.seedCandidates()
	}

	var next map[Coord]struct{}
	if e.Workers > 1 && len(e.candidates) >= parallelThreshold {
		next = e.evalParallel()
	} else {
		next = e.evalSerial()
	}

	cand := make(map[Coord]struct{}, len(next)*9)
	for c := range next {
		for _, n := range c.Closure() {
			cand[n] = struct{}{}
		}
	}
	e.candidates = cand
	e.cells.replace(next)
	e.generation++
}

// Touch folds the closure of an externally mutated cell into the candidate
// set. Frontends call it for every edit, so cells drawn or erased between
// steps are evaluated on the next one instead of being skipped by the
// optimization. A nil candidate set needs no touch-up: the next Start or
// Step reseeds it from the live cells wholesale.
func (e *Engine) Touch(c Coord) {
	if e.candidates == nil {
		return
	}
	for _, n := range c.Closure() {
		e.candidates[n] = struct{}{}
	}
}

func (e *Engine) seedCandidates() {
	e.candidates = make(map[Coord]struct{}, e.cells.Len()*9)
	e.cells.Each(func(c Coord) {
		for _, n := range c.Closure() {
			e.candidates[n] = struct{}{}
		}
	})
}

func (e *Engine) evalSerial() map[Coord]struct{} {
	next := make(map[Coord]struct{}, e.cells.Len())
	for c := range e.candidates {
		if nextState(e.cells.Contains(c), e.cells.LiveNeighbors(c)) {
			next[c] = struct{}{}
		}
	}
	return next
}

// evalParallel shards the candidates across Workers goroutines. Each worker
// only reads the previous generation and appends to its private slice; the
// merge into the next set happens after Wait, so writes stay serialized.
func (e *Engine) evalParallel() map[Coord]struct{} {
	cands := make([]Coord, 0, len(e.candidates))
	for c := range e.candidates {
		cands = append(cands, c)
	}

	workers := e.Workers
	born := make([][]Coord, workers)
	chunk := (len(cands) + workers - 1) / workers

	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		lo := i * chunk
		if lo >= len(cands) {
			break
		}
		hi := lo + chunk
		if hi > len(cands) {
			hi = len(cands)
		}
		i := i
		eg.Go(func() error {
			out := make([]Coord, 0, hi-lo)
			for _, c := range cands[lo:hi] {
				if nextState(e.cells.Contains(c), e.cells.LiveNeighbors(c)) {
					out = append(out, c)
				}
			}
			born[i] = out
			return nil
		})
	}
	// Workers never fail; Wait only synchronizes.
	_ = eg.Wait()

	next := make(map[Coord]struct{}, e.cells.Len())
	for _, out := range born {
		for _, c := range out {
			next[c] = struct{}{}
		}
	}
	return next
}

// nextState applies the rule: a live cell survives with 2 or 3 live
// neighbors, a dead cell is born with exactly 3.
func nextState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NaiveNext evaluates every cell in the bounding box of s expanded by two,
// with no candidate restriction. It is the reference the optimized Step must
// agree with for every reachable state.
func NaiveNext(s *CellSet) *CellSet {
	next := NewCellSet()
	min, max, ok := s.Bounds(2)
	if !ok {
		return next
	}
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			c := Coord{X: x, Y: y}
			if nextState(s.Contains(c), s.LiveNeighbors(c)) {
				next.Set(c, true)
			}
		}
	}
	return next
}
