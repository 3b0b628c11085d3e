package waveform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
	"github.com/joeydtaylor/scopecore/pkg/internal/waveform"
)

// TestRenderSpectrum_ConstantSignal puts all energy of a constant signal in
// bin zero.
func TestRenderSpectrum_ConstantSignal(t *testing.T) {
	samples := [][]float64{{3, 3, 3, 3, 3, 3, 3, 3}}
	set := channelset.NewSet([]types.Channel{
		{Name: "dc", Samples: samples, Scale: 1, ShowOnPrimary: true},
	})

	result, err := waveform.RenderSpectrum(set, 0, 0.001)
	require.NoError(t, err)
	require.Len(t, result.Series, 1)

	magnitudes := result.Series[0].Values
	require.Len(t, magnitudes, 4) // bins below Nyquist for n=8
	assert.InDelta(t, 3.0, magnitudes[0], 1e-9)
	for k := 1; k < len(magnitudes); k++ {
		assert.InDelta(t, 0.0, magnitudes[k], 1e-9, "bin %d", k)
	}

	// Bin frequencies: k / (n * dt).
	assert.InDelta(t, 0.0, result.Time[0], 1e-12)
	assert.InDelta(t, 1.0/(8*0.001), result.Time[1], 1e-9)
}

// TestRenderSpectrum_SineSignal concentrates energy in the tone's bin.
func TestRenderSpectrum_SineSignal(t *testing.T) {
	const n = 16
	row := make([]float64, n)
	for i := range row {
		// Two full cycles across the window: energy lands in bin 2.
		row[i] = math.Sin(2 * math.Pi * 2 * float64(i) / n)
	}
	set := channelset.NewSet([]types.Channel{
		{Name: "tone", Samples: [][]float64{row}, Scale: 1, ShowOnPrimary: true},
	})

	result, err := waveform.RenderSpectrum(set, 0, 0.001)
	require.NoError(t, err)
	require.Len(t, result.Series, 1)

	magnitudes := result.Series[0].Values
	peak := 0
	for k := range magnitudes {
		if magnitudes[k] > magnitudes[peak] {
			peak = k
		}
	}
	assert.Equal(t, 2, peak)
	assert.InDelta(t, 0.5, magnitudes[2], 1e-9) // half the amplitude below Nyquist
}

// TestRenderSpectrum_Validation mirrors the time-domain guards.
func TestRenderSpectrum_Validation(t *testing.T) {
	set := channelset.NewSet([]types.Channel{
		{Name: "a", Samples: [][]float64{{1, 2}}, Scale: 1, ShowOnPrimary: true},
	})

	_, err := waveform.RenderSpectrum(set, 5, 0.001)
	assert.ErrorIs(t, err, waveform.ErrRowOutOfRange)

	_, err = waveform.RenderSpectrum(set, 0, 0)
	assert.ErrorIs(t, err, waveform.ErrInvalidInterval)
}

// TestRenderSpectrum_HiddenChannelSkipped honors primary visibility.
func TestRenderSpectrum_HiddenChannelSkipped(t *testing.T) {
	set := channelset.NewSet([]types.Channel{
		{Name: "hidden", Samples: [][]float64{{1, 2, 3, 4}}, Scale: 1, ShowOnPrimary: false},
	})

	result, err := waveform.RenderSpectrum(set, 0, 0.001)
	require.NoError(t, err)
	assert.Empty(t, result.Series)
}
