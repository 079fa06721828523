package ej309plot

import (
	"math"

	"gonum.org/v1/plot"
)

// LogFloor is the lowest value shown on a log-scaled count axis. Empty
// bins are drawn down to it.
const LogFloor = 0.5

// LogScale is a log axis normalizer for histogram counts. Unlike
// plot.LogScale it accepts zero and negative values, clamping them to
// the axis minimum (or LogFloor when the minimum itself is not positive).
type LogScale struct{}

var _ plot.Normalizer = LogScale{}

// Normalize returns the fractional logarithmic distance of x between
// min and max.
func (LogScale) Normalize(min, max, x float64) float64 {
	if min <= 0 {
		min = LogFloor
	}
	if max <= min {
		max = min * 10
	}
	if x < min {
		x = min
	}
	logMin := math.Log(min)
	return (math.Log(x) - logMin) / (math.Log(max) - logMin)
}

// LogTicks marks decades with labels and the integer multiples between
// them without. A non-positive range is clamped like LogScale.
type LogTicks struct{}

var _ plot.Ticker = LogTicks{}

// Ticks returns the decade and multiple ticks within [min, max].
func (LogTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 {
		min = LogFloor
	}
	if max <= min {
		max = min * 10
	}

	val := math.Pow10(int(math.Floor(math.Log10(min))))
	top := math.Pow10(int(math.Ceil(math.Log10(max))))
	var ticks []plot.Tick
	for val < top {
		for i := 1; i < 10; i++ {
			v := val * float64(i)
			if v < min || v > max {
				continue
			}
			if i == 1 {
				ticks = append(ticks, plot.Tick{Value: v, Label: formatFloatTick(v, -1)})
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v})
		}
		val *= 10
	}
	if val <= max {
		ticks = append(ticks, plot.Tick{Value: val, Label: formatFloatTick(val, -1)})
	}
	return ticks
}
