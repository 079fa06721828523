package ej309plot

import (
	"image"
	"image/color"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// FigureOptions tunes NewFigure.
type FigureOptions struct {
	// NBins is the number of bins of each panel, DefaultBins if zero.
	NBins int

	// ZAIDs restricts the energy overlays to these ZAIDs. All ZAIDs are
	// drawn when it is empty.
	ZAIDs []float64
}

// EnergyPanel is the left panel: all deposits, plus one outline per ZAID
// sharing the binning of the total.
type EnergyPanel struct {
	Total  *Hist
	Groups []*Hist
	Text   string
	Plot   *plot.Plot
}

// LightPanel is the right panel: the light output of all pulses.
type LightPanel struct {
	Hist *Hist
	Text string
	Plot *plot.Plot
}

// Figure is the two-panel energy/light figure.
type Figure struct {
	Energy *EnergyPanel
	Light  *LightPanel
}

// NewFigure bins the records and lays out both panels.
func NewFigure(energy *EnergyRecords, light *LightRecords, opts FigureOptions) (*Figure, error) {
	if opts.NBins < 1 {
		opts.NBins = DefaultBins
	}
	pal, err := NewOverlayPalette()
	if err != nil {
		return nil, err
	}

	return &Figure{
		Energy: newEnergyPanel(energy, opts, pal),
		Light:  newLightPanel(light, opts),
	}, nil
}

func newEnergyPanel(energy *EnergyRecords, opts FigureOptions, pal OverlayPalette) *EnergyPanel {
	edges := Edges(energy.Energy, opts.NBins)
	panel := &EnergyPanel{
		Total: NewHist("Total", edges),
		Text:  CountsText(energy.Len()),
		Plot:  newCountsPlot("Energy Deposition", "Energy Deposited (MeV)"),
	}
	panel.Total.Fill(energy.Energy...)

	p := panel.Plot
	hTotal := hplot.NewH1D(panel.Total.H1D)
	hTotal.FillColor = TotalFill
	hTotal.LineStyle.Color = color.Black
	hTotal.Infos.Style = hplot.HInfoNone
	p.Add(hTotal)
	p.Legend.Add(panel.Total.Label, hTotal)

	for i, g := range SelectGroups(energy.Groups(), opts.ZAIDs) {
		hist := NewHist("ZAID "+g.Label, edges)
		hist.Fill(g.Energy...)
		panel.Groups = append(panel.Groups, hist)

		h := hplot.NewH1D(hist.H1D)
		h.FillColor = nil
		h.LineStyle.Color = pal.Color(i)
		h.LineStyle.Width = vg.Points(2.5)
		h.Infos.Style = hplot.HInfoNone
		p.Add(h)
		p.Legend.Add(hist.Label, h)
	}

	p.Add(NewTextBox(panel.Text))
	setCountRange(p, panel.Total.Max())

	// keep the legend clear of the counts box
	p.Legend.Top = true
	p.Legend.YOffs = -12 * vg.Millimeter
	p.Legend.XOffs = -4 * vg.Millimeter

	return panel
}

func newLightPanel(light *LightRecords, opts FigureOptions) *LightPanel {
	panel := &LightPanel{
		Hist: Histogram("Light", light.Light, opts.NBins),
		Text: CountsText(light.Len()),
		Plot: newCountsPlot("Light Output", "Light Output (MeVee)"),
	}

	p := panel.Plot
	h := hplot.NewH1D(panel.Hist.H1D)
	h.FillColor = LightFill
	h.LineStyle.Color = color.Black
	h.Infos.Style = hplot.HInfoNone
	p.Add(h)

	p.Add(NewTextBox(panel.Text))
	setCountRange(p, panel.Hist.Max())

	return panel
}

func newCountsPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 2 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Counts"
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = LogTicks{}
	p.Y.Scale = LogScale{}
	p.Legend.Padding = 1 * vg.Millimeter
	return p
}

// setCountRange fixes the log axis from LogFloor to above the tallest
// bin, leaving head room for the annotations.
func setCountRange(p *plot.Plot, maxCount int) {
	top := float64(maxCount)
	if top < 1 {
		top = 1
	}
	p.Y.Min = LogFloor
	p.Y.Max = top * 5
}

// Draw tiles both panels side by side on dc.
func (f *Figure) Draw(dc draw.Canvas) {
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
		PadX:      10 * vg.Millimeter,
	}
	plots := [][]*plot.Plot{{f.Energy.Plot, f.Light.Plot}}
	canvases := plot.Align(plots, tiles, dc)
	f.Energy.Plot.Draw(canvases[0][0])
	f.Light.Plot.Draw(canvases[0][1])
}

// Render rasterises the figure into a w×h pixel image.
func (f *Figure) Render(w, h int) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := vgimg.NewWith(vgimg.UseImage(image.NewRGBA(image.Rect(0, 0, w, h))))
	f.Draw(draw.New(c))
	return c.Image()
}
