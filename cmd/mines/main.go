package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/mines/board"
	"github.com/idilsaglam/mines/internal/settings"
	"github.com/idilsaglam/mines/internal/ui"
)

func main() {
	// Root flags override the saved settings for this run only.
	width := flag.Int("width", 0, "custom board width (use with -height and -mines)")
	height := flag.Int("height", 0, "custom board height")
	mines := flag.Int("mines", 0, "custom mine count")
	seed := flag.Int64("seed", 0, "seed mine placement for a reproducible first board")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	flag.Parse()

	cfg, err := settings.Load()
	if err != nil {
		// An unreadable config file should not block play.
		fmt.Fprintln(os.Stderr, "mines:", err)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *width > 0 || *height > 0 || *mines > 0 {
		cfg.Difficulty = settings.Custom
		cfg.Width, cfg.Height, cfg.Mines = *width, *height, *mines
	}

	var opts []board.Option
	if *seed != 0 {
		opts = append(opts, board.WithSeed(*seed))
	}

	if err := ui.Run(cfg, opts...); err != nil {
		fmt.Fprintln(os.Stderr, "mines:", err)
		os.Exit(1)
	}
}
