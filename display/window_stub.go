//go:build !cgo

package display

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/decibelcooper/ej309plot"
)

// Window is unavailable without cgo.
type Window struct {
	Width, Height int
	Logger        *zap.Logger
}

var _ ej309plot.Viewer = (*Window)(nil)

func (w *Window) Show(string, *ej309plot.Figure) error {
	return errors.New("display: opening a window requires cgo (build with CGO_ENABLED=1)")
}
