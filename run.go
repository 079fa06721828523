package ej309plot

import (
	"go.uber.org/zap"
)

// A Viewer shows a figure, blocking until it is dismissed.
type Viewer interface {
	Show(title string, fig *Figure) error
}

// WindowTitle is the title given to the figure window.
const WindowTitle = "EJ309 energy deposition and light output"

// PlotEnergyAndLight loads the energy file then the light file and
// shows both histograms with v. A load failure is logged and returned
// as a *LoadError before anything is shown; the light file is not read
// when the energy file fails.
func PlotEnergyAndLight(cfg Config, v Viewer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("starting", cfg.logFields()...)

	energy, err := LoadEnergy(cfg.EnergyFile)
	if err != nil {
		logger.Error("could not load energy deposits", zap.String("file", cfg.EnergyFile), zap.Error(err))
		return err
	}
	logger.Debug("loaded energy deposits", zap.String("file", cfg.EnergyFile), zap.Int("events", energy.Len()))

	light, err := LoadLight(cfg.LightFile)
	if err != nil {
		logger.Error("could not load light output", zap.String("file", cfg.LightFile), zap.Error(err))
		return err
	}
	logger.Debug("loaded light output", zap.String("file", cfg.LightFile), zap.Int("pulses", light.Len()))

	fig, err := NewFigure(energy, light, cfg.Figure)
	if err != nil {
		logger.Error("could not build figure", zap.Error(err))
		return err
	}
	logger.Debug("built figure",
		zap.Int("zaids", len(fig.Energy.Groups)),
		zap.Float64("emin", fig.Energy.Total.Edges[0]),
		zap.Float64("emax", fig.Energy.Total.Edges[len(fig.Energy.Total.Edges)-1]),
	)

	if err := v.Show(WindowTitle, fig); err != nil {
		logger.Error("could not display figure", zap.Error(err))
		return err
	}
	return nil
}
