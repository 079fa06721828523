package ej309plot

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/palette/brewer"
)

var (
	// TotalFill fills the aggregate energy histogram (sky blue).
	TotalFill color.Color = color.NRGBA{R: 135, G: 206, B: 235, A: 179}

	// LightFill fills the light output histogram (orange).
	LightFill color.Color = color.NRGBA{R: 255, G: 165, A: 179}
)

// OverlayPalette colors the per-ZAID outlines.
type OverlayPalette []color.Color

// NewOverlayPalette returns the ColorBrewer Dark2 qualitative palette.
func NewOverlayPalette() (OverlayPalette, error) {
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Dark2", 8)
	if err != nil {
		return nil, errors.Wrap(err, "ej309plot: could not create overlay palette")
	}
	return OverlayPalette(p.Colors()), nil
}

// Color returns the color of the i-th overlay. The palette is used from
// its second entry on, wrapping around.
func (p OverlayPalette) Color(i int) color.Color {
	return p[(i+1)%len(p)]
}
