package ej309plot_test

import (
	"flag"
	"testing"

	"github.com/decibelcooper/ej309plot"
)

func TestFloatArrayFlags(t *testing.T) {
	f := ej309plot.FloatArrayFlags{Array: []float64{1001}}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&f, "zaid", "")

	if err := fs.Parse([]string{"-zaid", "6012", "-zaid", "6013.5"}); err != nil {
		t.Fatalf("could not parse flags: %v", err)
	}
	if len(f.Array) != 2 || f.Array[0] != 6012 || f.Array[1] != 6013.5 {
		t.Errorf("zaids = %v, want [6012 6013.5]", f.Array)
	}
	if f.String() != "[6012 6013.5]" {
		t.Errorf("String() = %q", f.String())
	}

	if err := fs.Parse([]string{"-zaid", "H-1"}); err == nil {
		t.Errorf("expected an error for a non-numeric value")
	}
}
