package main

import (
	"flag"
	"strconv"
	"testing"

	"github.com/decibelcooper/ej309plot"
)

func TestFlagDefaults(t *testing.T) {
	cfg := ej309plot.DefaultConfig()
	for name, want := range map[string]string{
		"energy": cfg.EnergyFile,
		"light":  cfg.LightFile,
		"nbins":  strconv.Itoa(cfg.Figure.NBins),
		"width":  strconv.Itoa(cfg.Width),
		"height": strconv.Itoa(cfg.Height),
	} {
		f := flag.Lookup(name)
		if f == nil {
			t.Errorf("flag -%s not defined", name)
			continue
		}
		if f.DefValue != want {
			t.Errorf("-%s default = %q, want %q", name, f.DefValue, want)
		}
	}
}
