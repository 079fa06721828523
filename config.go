package ej309plot

import "go.uber.org/zap"

// Default input files, read from the working directory.
const (
	DefaultEnergyFile = "EJ309.d"
	DefaultLightFile  = "EJ309_mpp_All_Pulses"
)

// Config describes one plotting run.
type Config struct {
	EnergyFile string
	LightFile  string
	Figure     FigureOptions

	// Width and Height are the initial size of the figure in pixels.
	Width, Height int
}

// DefaultConfig returns the configuration of a parameterless run.
func DefaultConfig() Config {
	return Config{
		EnergyFile: DefaultEnergyFile,
		LightFile:  DefaultLightFile,
		Figure:     FigureOptions{NBins: DefaultBins},
		Width:      1200,
		Height:     600,
	}
}

func (cfg Config) logFields() []zap.Field {
	return []zap.Field{
		zap.String("energy", cfg.EnergyFile),
		zap.String("light", cfg.LightFile),
		zap.Int("nbins", cfg.Figure.NBins),
		zap.Float64s("zaids", cfg.Figure.ZAIDs),
	}
}
