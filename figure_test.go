package ej309plot_test

import (
	"image/color"
	"testing"

	"github.com/decibelcooper/ej309plot"
)

func testRecords() (*ej309plot.EnergyRecords, *ej309plot.LightRecords) {
	energy := &ej309plot.EnergyRecords{
		Energy: []float64{0.1, 0.5, 1.2, 2.5, 0.7, 3.9},
		ZAID:   []float64{1001, 1001, 6012, 1001, 6012, 6000},
	}
	light := &ej309plot.LightRecords{Light: []float64{0.01, 0.2, 0.2, 0.9}}
	return energy, light
}

func TestNewFigure(t *testing.T) {
	energy, light := testRecords()
	fig, err := ej309plot.NewFigure(energy, light, ej309plot.FigureOptions{})
	if err != nil {
		t.Fatalf("could not build figure: %v", err)
	}

	ep := fig.Energy
	if ep.Total.Label != "Total" || ep.Total.Entries() != 6 || len(ep.Total.Counts) != ej309plot.DefaultBins {
		t.Errorf("total = %q with %d entries in %d bins", ep.Total.Label, ep.Total.Entries(), len(ep.Total.Counts))
	}
	wantLabels := []string{"ZAID 1001", "ZAID 6012", "ZAID 6000"}
	if len(ep.Groups) != len(wantLabels) {
		t.Fatalf("got %d overlays, want %d", len(ep.Groups), len(wantLabels))
	}
	for i, g := range ep.Groups {
		if g.Label != wantLabels[i] {
			t.Errorf("overlay %d label = %q, want %q", i, g.Label, wantLabels[i])
		}
		if &g.Edges[0] != &ep.Total.Edges[0] {
			t.Errorf("overlay %d does not share the total's edges", i)
		}
	}
	if ep.Text != "Total Counts: 6" {
		t.Errorf("energy text = %q", ep.Text)
	}
	if ep.Plot.Title.Text != "Energy Deposition" || ep.Plot.X.Label.Text != "Energy Deposited (MeV)" || ep.Plot.Y.Label.Text != "Counts" {
		t.Errorf("energy labels = %q / %q / %q", ep.Plot.Title.Text, ep.Plot.X.Label.Text, ep.Plot.Y.Label.Text)
	}

	lp := fig.Light
	if lp.Hist.Entries() != 4 || lp.Text != "Total Counts: 4" {
		t.Errorf("light panel = %d entries, text %q", lp.Hist.Entries(), lp.Text)
	}
	if lp.Hist.Edges[0] != 0.01 || lp.Hist.Edges[len(lp.Hist.Edges)-1] != 0.9 {
		t.Errorf("light edges span [%v, %v], want [0.01, 0.9]", lp.Hist.Edges[0], lp.Hist.Edges[len(lp.Hist.Edges)-1])
	}
	if lp.Plot.X.Label.Text != "Light Output (MeVee)" {
		t.Errorf("light x label = %q", lp.Plot.X.Label.Text)
	}
}

func TestNewFigureSelectedZAIDs(t *testing.T) {
	energy, light := testRecords()
	fig, err := ej309plot.NewFigure(energy, light, ej309plot.FigureOptions{NBins: 10, ZAIDs: []float64{6012}})
	if err != nil {
		t.Fatalf("could not build figure: %v", err)
	}
	if len(fig.Energy.Groups) != 1 || fig.Energy.Groups[0].Label != "ZAID 6012" {
		t.Fatalf("overlays = %d", len(fig.Energy.Groups))
	}
	if fig.Energy.Total.Entries() != 6 {
		t.Errorf("total has %d entries, want all 6", fig.Energy.Total.Entries())
	}
	if len(fig.Energy.Total.Counts) != 10 || len(fig.Light.Hist.Counts) != 10 {
		t.Errorf("got %d/%d bins, want 10", len(fig.Energy.Total.Counts), len(fig.Light.Hist.Counts))
	}
}

func TestOverlayPalette(t *testing.T) {
	pal, err := ej309plot.NewOverlayPalette()
	if err != nil {
		t.Fatalf("could not create palette: %v", err)
	}
	if len(pal) != 8 {
		t.Fatalf("palette has %d colors, want 8", len(pal))
	}
	if sameColor(pal.Color(0), pal[0]) {
		t.Errorf("first overlay uses the first palette color")
	}
	if sameColor(pal.Color(0), ej309plot.TotalFill) {
		t.Errorf("first overlay matches the total fill")
	}
	for i := 1; i < len(pal); i++ {
		if sameColor(pal.Color(i), pal.Color(i-1)) {
			t.Errorf("overlays %d and %d share a color", i-1, i)
		}
	}
	if !sameColor(pal.Color(len(pal)), pal.Color(0)) {
		t.Errorf("palette does not wrap around")
	}
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestRender(t *testing.T) {
	energy, light := testRecords()
	fig, err := ej309plot.NewFigure(energy, light, ej309plot.FigureOptions{})
	if err != nil {
		t.Fatalf("could not build figure: %v", err)
	}

	img := fig.Render(800, 400)
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 400 {
		t.Fatalf("image is %dx%d, want 800x400", b.Dx(), b.Dy())
	}

	// something other than background must have been drawn
	white := color.RGBAModel.Convert(color.White)
	drawn := false
	for y := 0; y < 400 && !drawn; y += 4 {
		for x := 0; x < 800; x += 4 {
			if color.RGBAModel.Convert(img.At(x, y)) != white {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Errorf("rendered image is blank")
	}

	// resizing renders again
	if b := fig.Render(1200, 600).Bounds(); b.Dx() != 1200 || b.Dy() != 600 {
		t.Errorf("image is %dx%d, want 1200x600", b.Dx(), b.Dy())
	}
}

func TestRenderEmptyLight(t *testing.T) {
	energy, _ := testRecords()
	fig, err := ej309plot.NewFigure(energy, &ej309plot.LightRecords{}, ej309plot.FigureOptions{})
	if err != nil {
		t.Fatalf("could not build figure: %v", err)
	}
	if fig.Light.Text != "Total Counts: 0" {
		t.Errorf("light text = %q", fig.Light.Text)
	}
	fig.Render(600, 300)
}

func TestNewFigureLargeConstant(t *testing.T) {
	energy := &ej309plot.EnergyRecords{
		Energy: []float64{1e17, 1e17},
		ZAID:   []float64{1001, 6012},
	}
	light := &ej309plot.LightRecords{Light: []float64{-1e308, 1e308}}
	fig, err := ej309plot.NewFigure(energy, light, ej309plot.FigureOptions{})
	if err != nil {
		t.Fatalf("could not build figure: %v", err)
	}
	if fig.Energy.Total.Entries() != 2 || fig.Light.Hist.Entries() != 2 {
		t.Errorf("entries = %d, %d; want 2, 2", fig.Energy.Total.Entries(), fig.Light.Hist.Entries())
	}
	for _, g := range fig.Energy.Groups {
		if g.Entries() != 1 {
			t.Errorf("%s has %d entries, want 1", g.Label, g.Entries())
		}
	}
}
