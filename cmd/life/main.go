//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeplane/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Clamp()

	game := app.New(cfg)

	ebiten.SetWindowTitle("lifeplane")
	ebiten.SetTPS(60)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
