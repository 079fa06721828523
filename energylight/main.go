package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/decibelcooper/ej309plot"
	"github.com/decibelcooper/ej309plot/display"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

Shows the deposited energy (per ZAID) and light output histograms of an
EJ309 simulation.

options:
`,
	)
	flag.PrintDefaults()
}

var defaults = ej309plot.DefaultConfig()

var (
	energyFile = flag.String("energy", defaults.EnergyFile, "collision file (no header; ZAID in column 5, energy in column 7)")
	lightFile  = flag.String("light", defaults.LightFile, "pulse file (one header line; light output in column 7)")
	nBins      = flag.Int("nbins", defaults.Figure.NBins, "number of bins")
	width      = flag.Int("width", defaults.Width, "window width in pixels")
	height     = flag.Int("height", defaults.Height, "window height in pixels")
	verbose    = flag.Bool("v", false, "debug logging")
	doProfile  = flag.Bool("profile", false, "write a CPU profile to the working directory")
	zaids      ej309plot.FloatArrayFlags
)

func main() {
	flag.Var(&zaids, "zaid", "only overlay this ZAID (may be repeated; default all)")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 0 {
		printUsage()
		os.Exit(2)
	}

	os.Exit(run())
}

func run() int {
	logger, err := ej309plot.NewLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	cfg := defaults
	cfg.EnergyFile = *energyFile
	cfg.LightFile = *lightFile
	cfg.Figure.NBins = *nBins
	cfg.Figure.ZAIDs = zaids.Array
	cfg.Width, cfg.Height = *width, *height

	win := &display.Window{Width: cfg.Width, Height: cfg.Height, Logger: logger}
	if err := ej309plot.PlotEnergyAndLight(cfg, win, logger); err != nil {
		return 1
	}
	return 0
}
