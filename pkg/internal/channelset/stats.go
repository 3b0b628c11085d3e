package channelset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics over a channel's calibrated samples.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Count  int
}

// Summarize computes descriptive statistics over every calibrated sample of
// the channel at index. An out-of-range index or an empty channel yields the
// zero Summary.
func (s *Set) Summarize(index int) Summary {
	ch := s.Channel(index)
	if ch == nil || ch.RowCount() == 0 || ch.SampleCount() == 0 {
		return Summary{}
	}

	values := make([]float64, 0, ch.RowCount()*ch.SampleCount())
	for r := 0; r < ch.RowCount(); r++ {
		for c := 0; c < len(ch.Samples[r]); c++ {
			values = append(values, ch.Value(r, c))
		}
	}
	if len(values) == 0 {
		return Summary{}
	}

	mean, std := stat.MeanStdDev(values, nil)
	return Summary{
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Mean:   mean,
		StdDev: std,
		Count:  len(values),
	}
}
