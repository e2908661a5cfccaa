package trackers

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds summary statistics of per-episode data
type Summary struct {
	Episodes int
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Summarize computes summary statistics of data. The standard
// deviation is NaN when there are fewer than two episodes.
func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}

	s := Summary{
		Episodes: len(data),
		Min:      floats.Min(data),
		Max:      floats.Max(data),
	}
	s.Mean, s.StdDev = stat.MeanStdDev(data, nil)
	return s
}

func (s Summary) String() string {
	str := "Summary | Episodes: %d  |  Mean: %.4f  |  StdDev: %.4f  |  " +
		"Min: %.4f  |  Max: %.4f"
	return fmt.Sprintf(str, s.Episodes, s.Mean, s.StdDev, s.Min, s.Max)
}
