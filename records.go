package ej309plot

import (
	"github.com/pkg/errors"
)

// Positional columns (0-based) of the input tables.
const (
	ZAIDColumn   = 4
	EnergyColumn = 6
	LightColumn  = 6
)

// EnergyRecords holds the collision events of an EJ309.d file.
type EnergyRecords struct {
	Energy []float64 // MeV
	ZAID   []float64
}

// Len returns the number of events.
func (e *EnergyRecords) Len() int { return len(e.Energy) }

// LightRecords holds the pulses of an MPPost pulse file.
type LightRecords struct {
	Light []float64 // MeVee
}

// Len returns the number of pulses.
func (l *LightRecords) Len() int { return len(l.Light) }

// LoadEnergy reads a header-less collision file, taking the ZAID from
// column 4 and the deposited energy from column 6.
func LoadEnergy(fname string) (*EnergyRecords, error) {
	cols, err := LoadColumns(fname, false, ZAIDColumn, EnergyColumn)
	if err != nil {
		return nil, err
	}
	if cols[0].Len() == 0 {
		return nil, &LoadError{Filename: fname, Err: errors.New("ej309plot: no data rows")}
	}
	return &EnergyRecords{
		Energy: cols[1].Values,
		ZAID:   cols[0].Values,
	}, nil
}

// LoadLight reads a pulse file, skipping its header line and taking the
// light output from column 6. A file holding only the header gives no
// pulses.
func LoadLight(fname string) (*LightRecords, error) {
	cols, err := LoadColumns(fname, true, LightColumn)
	if err != nil {
		return nil, err
	}
	return &LightRecords{Light: cols[0].Values}, nil
}
