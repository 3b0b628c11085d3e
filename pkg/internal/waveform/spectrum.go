package waveform

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
)

// RenderSpectrum produces a frequency-domain view of one row: for every
// primary-visible channel, the FFT magnitude of its calibrated samples.
// The Time field of the result holds bin frequencies in Hz; only bins below
// the Nyquist frequency are emitted. Magnitudes are normalized by the
// sample count, so a constant signal reports its level in bin zero.
func RenderSpectrum(set *channelset.Set, rowIndex int, sampleIntervalSec float64) (Result, error) {
	if err := ValidateInterval(sampleIntervalSec); err != nil {
		return Result{}, err
	}
	if rowIndex < 0 || rowIndex >= set.RowCount() {
		return Result{}, ErrRowOutOfRange
	}

	n := set.SampleCount()
	bins := n / 2
	if bins < 1 {
		// Too few samples for any sub-Nyquist bin.
		return Result{}, nil
	}

	result := Result{Time: make([]float64, 0, bins)}
	for k := 0; k < bins; k++ {
		result.Time = append(result.Time, float64(k)/(float64(n)*sampleIntervalSec))
	}

	for pos, ch := range set.Channels() {
		if !ch.ShowOnPrimary {
			continue
		}
		if rowIndex >= ch.RowCount() || ch.SampleCount() == 0 {
			continue
		}
		spectrum := fft.FFTReal(calibrateRow(&ch, rowIndex))

		count := bins
		if len(spectrum) < count {
			count = len(spectrum)
		}
		magnitudes := make([]float64, count)
		for k := 0; k < count; k++ {
			magnitudes[k] = cmplx.Abs(spectrum[k]) / float64(len(spectrum))
		}

		result.Series = append(result.Series, Series{
			ChannelName: ch.Name,
			Row:         rowIndex,
			Label:       ch.Name,
			Values:      magnitudes,
			Color:       ChannelColor(pos),
		})
	}
	return result, nil
}
