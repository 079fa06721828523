package ej309plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CountsText is the annotation reporting the size of a sample.
func CountsText(n int) string {
	return fmt.Sprintf("Total Counts: %d", n)
}

// TextBox draws framed text anchored by its top-right corner at
// (X, Y), given as fractions of the data area.
type TextBox struct {
	Text string
	X, Y float64

	// TextStyle defaults to the legend text style of the plot.
	TextStyle text.Style
	LineStyle draw.LineStyle
	Fill      color.Color
	Padding   vg.Length
}

var _ plot.Plotter = (*TextBox)(nil)

// NewTextBox returns a box in the upper-right corner of the data area
// with a half transparent white background.
func NewTextBox(txt string) *TextBox {
	return &TextBox{
		Text: txt,
		X:    0.95,
		Y:    0.95,
		LineStyle: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(0.5),
		},
		Fill:    color.NRGBA{R: 255, G: 255, B: 255, A: 128},
		Padding: vg.Points(3),
	}
}

// Plot implements the plot.Plotter interface.
func (b *TextBox) Plot(c draw.Canvas, p *plot.Plot) {
	sty := b.TextStyle
	if sty.Handler == nil {
		sty = p.Legend.TextStyle
	}
	sty.XAlign = draw.XRight
	sty.YAlign = draw.YTop

	x1, y1 := c.X(b.X), c.Y(b.Y)
	x0 := x1 - sty.Width(b.Text) - 2*b.Padding
	y0 := y1 - sty.Height(b.Text) - 2*b.Padding
	pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}

	if b.Fill != nil {
		c.FillPolygon(b.Fill, pts)
	}
	if b.LineStyle.Color != nil && b.LineStyle.Width > 0 {
		c.StrokeLines(b.LineStyle, append(pts, pts[0]))
	}
	c.FillText(sty, vg.Point{X: x1 - b.Padding, Y: y1 - b.Padding}, b.Text)
}
