package diffexp

import (
	"math"

	mstats "github.com/montanaflynn/stats"
)

// log2 is math.Log2 spelled out locally so diffexp.go reads as a single
// coherent statistics vocabulary alongside meanAndStdDev.
func log2(x float64) float64 { return math.Log2(x) }

// meanAndStdDev summarizes the per-key hit counts using
// github.com/montanaflynn/stats. A population standard deviation is
// used since the per-key counters are the complete population of this
// run, not a sample drawn from a larger one.
func meanAndStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean, err := mstats.Mean(values)
	if err != nil {
		return 0, 0
	}
	stdDev, err = mstats.StandardDeviationPopulation(values)
	if err != nil {
		return mean, 0
	}
	return mean, stdDev
}
