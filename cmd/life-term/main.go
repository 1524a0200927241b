package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"lifeplane/internal/app"
	"lifeplane/internal/core"
	"lifeplane/internal/patterns"
	"lifeplane/internal/runner"
	"lifeplane/internal/term"
)

func main() {
	cfg := app.NewConfig()
	var (
		batch    bool
		random   bool
		maxSteps = 1000
	)

	flaggy.SetName("life-term")
	flaggy.SetDescription("Conway's Game of Life on an unbounded plane, in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.FPS, "f", "fps", "generations per second")
	flaggy.Int(&cfg.Workers, "j", "workers", "parallel evaluation workers")
	flaggy.String(&cfg.Pattern, "p", "pattern", "seed pattern ["+strings.Join(patterns.Names(), "|")+"]")
	flaggy.Float64(&cfg.Density, "d", "density", "live-cell density for random seeding")
	flaggy.Int64(&cfg.Seed, "e", "seed", "seed for random fills")
	flaggy.Bool(&random, "r", "random", "seed with random cells instead of a pattern")
	flaggy.Bool(&batch, "b", "batch", "run headless and print progress")
	flaggy.Int(&maxSteps, "s", "max-steps", "stop after this many generations in batch mode")
	flaggy.Parse()
	cfg.Clamp()

	cells := core.NewCellSet()
	if random {
		patterns.Randomize(cells, core.Coord{X: 0, Y: 0}, core.Coord{X: 39, Y: 19}, cfg.Density, cfg.Seed)
	} else {
		p, ok := patterns.Lookup(cfg.Pattern)
		if !ok {
			flaggy.ShowHelpAndExit("unknown pattern " + cfg.Pattern)
		}
		p.Stamp(cells, core.Coord{X: 6, Y: 6})
	}

	if batch {
		runBatch(cells, cfg, maxSteps)
		return
	}

	r := runner.New(cells, runner.Options{FPS: cfg.FPS, Workers: cfg.Workers}, nil)
	ui, err := term.NewConsoleUI(r, cfg.Density, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	r.RegisterViewer(ui)
	if err := ui.Start(); err != nil {
		log.Fatal(err)
	}
	r.Close()
}

func runBatch(cells *core.CellSet, cfg *app.Config, maxSteps int) {
	statusCh := make(chan runner.Status, 16)
	r := runner.New(cells, runner.Options{FPS: cfg.FPS, MaxSteps: maxSteps, Workers: cfg.Workers}, statusCh)

	fmt.Println("Simulation started...")
	start := time.Now()
	r.Run()
	for st := range statusCh {
		if st.State == runner.StateFinished {
			elapsed := time.Since(start).Round(time.Millisecond)
			fmt.Printf("Finished: generation %d, %d live cells, %v elapsed\n", st.Generation, st.LiveCells, elapsed)
			break
		}
		if st.Generation > 0 && st.Generation%50 == 0 {
			fmt.Printf("  generation %d: %d live cells\n", st.Generation, st.LiveCells)
		}
	}
	r.Close()
}
