package builder

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
	"github.com/joeydtaylor/scopecore/pkg/internal/waveform"
)

// ViewRequest is exported from the internal types package.
type ViewRequest = types.ViewRequest

// RenderMode is exported from the internal types package.
type RenderMode = types.RenderMode

// Export render modes to be accessible under the builder package
const (
	SingleRow = types.SingleRow
	Overlay   = types.Overlay
)

// Render dispatches a view request to the matching chart view.
func Render(set *channelset.Set, req types.ViewRequest) (waveform.Result, error) {
	return waveform.Render(set, req)
}

// RenderSingleRow renders one row of every primary-visible channel.
func RenderSingleRow(set *channelset.Set, rowIndex int, sampleIntervalSec float64) (waveform.Result, error) {
	return waveform.RenderSingleRow(set, rowIndex, sampleIntervalSec)
}

// RenderOverlay renders consecutive rows of every secondary-visible channel,
// color-graded by offset.
func RenderOverlay(set *channelset.Set, baseRow, overlayCount int, sampleIntervalSec float64) (waveform.Result, error) {
	return waveform.RenderOverlay(set, baseRow, overlayCount, sampleIntervalSec)
}

// RenderSpectrum renders the FFT magnitude of one row per primary-visible
// channel.
func RenderSpectrum(set *channelset.Set, rowIndex int, sampleIntervalSec float64) (waveform.Result, error) {
	return waveform.RenderSpectrum(set, rowIndex, sampleIntervalSec)
}

// ChannelColor returns the deterministic base color for a load position.
func ChannelColor(position int) colorful.Color {
	return waveform.ChannelColor(position)
}

// Darken blends a color toward black by fraction, clamped to [0, 1].
func Darken(c colorful.Color, fraction float64) colorful.Color {
	return waveform.Darken(c, fraction)
}
