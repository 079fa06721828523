//go:build cgo

// Package display shows figures in a desktop window.
package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/decibelcooper/ej309plot"
)

const minWidth, minHeight = 480, 240

// Window shows a figure in a resizable window. The figure is rendered
// again whenever the window size changes.
type Window struct {
	Width, Height int
	Logger        *zap.Logger
}

var _ ej309plot.Viewer = (*Window)(nil)

// Show opens the window and blocks until it is closed, or Esc or Q is
// pressed.
func (w *Window) Show(title string, fig *ej309plot.Figure) error {
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	width, height := w.Width, w.Height
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowSizeLimits(minWidth, minHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)

	return ebiten.RunGame(&figureGame{fig: fig, logger: logger})
}

type figureGame struct {
	fig    *ej309plot.Figure
	logger *zap.Logger

	img  *ebiten.Image
	w, h int
}

func (g *figureGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *figureGame) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.img == nil || w != g.w || h != g.h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImageFromImage(g.fig.Render(w, h))
		g.w, g.h = w, h
		g.logger.Debug("rendered figure", zap.Int("width", w), zap.Int("height", h))
	}
	screen.DrawImage(g.img, nil)
}

func (g *figureGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
