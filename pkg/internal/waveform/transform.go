// Package waveform turns raw channel sample matrices into chart-ready
// (time, value) series for the two chart views, applying per-channel
// bias/scale calibration, palette color assignment, and overlay
// color-fraction darkening. It has no rendering concerns of its own; the
// output is plain numeric series consumed by an external chart collaborator.
package waveform

import (
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
)

// MaxOverlayCount bounds how many consecutive rows an overlay may request.
const MaxOverlayCount = 20

var (
	// ErrRowOutOfRange marks a render whose base row falls outside the
	// set's declared rows, or a render against an empty set.
	ErrRowOutOfRange = errors.New("waveform: row index out of range")

	// ErrInvalidInterval marks a sample interval that is not a positive
	// finite number. The caller keeps its last valid interval.
	ErrInvalidInterval = errors.New("waveform: sample interval must be a positive finite number")
)

// ValidateInterval checks a user-supplied sample interval.
func ValidateInterval(sampleIntervalSec float64) error {
	if sampleIntervalSec <= 0 || math.IsNaN(sampleIntervalSec) || math.IsInf(sampleIntervalSec, 1) {
		return ErrInvalidInterval
	}
	return nil
}

// Series is one plotted line: the calibrated values of one channel row.
type Series struct {
	ChannelName string
	Row         int            // Source row within the channel's matrix.
	Label       string         // Legend label; empty for unlabeled overlay offsets.
	Values      []float64      // Calibrated values, one per sample column.
	Color       colorful.Color // Palette color, darkened by overlay fraction.
}

// Result is a complete render: the shared time axis plus every contributing
// series.
type Result struct {
	Time   []float64 // time[i] = i * sampleIntervalSec, length = declared sample count.
	Series []Series
}

// Render dispatches a view request: SingleRow renders the primary chart,
// Overlay renders the secondary chart.
func Render(set *channelset.Set, req types.ViewRequest) (Result, error) {
	switch req.Mode {
	case types.Overlay:
		return RenderOverlay(set, req.BaseRow, req.OverlayCount, req.SampleIntervalSec)
	default:
		return RenderSingleRow(set, req.BaseRow, req.SampleIntervalSec)
	}
}

// RenderSingleRow produces one labeled series per primary-visible channel
// for the given row. Channels shorter than the requested row are skipped
// rather than indexed out of range. Fails if rowIndex is outside the set's
// declared rows.
func RenderSingleRow(set *channelset.Set, rowIndex int, sampleIntervalSec float64) (Result, error) {
	if err := ValidateInterval(sampleIntervalSec); err != nil {
		return Result{}, err
	}
	if rowIndex < 0 || rowIndex >= set.RowCount() {
		return Result{}, ErrRowOutOfRange
	}

	result := Result{Time: timeAxis(set.SampleCount(), sampleIntervalSec)}
	for pos, ch := range set.Channels() {
		if !ch.ShowOnPrimary {
			continue
		}
		if rowIndex >= ch.RowCount() {
			continue // Shorter channel: no series for this row.
		}
		result.Series = append(result.Series, Series{
			ChannelName: ch.Name,
			Row:         rowIndex,
			Label:       ch.Name,
			Values:      calibrateRow(&ch, rowIndex),
			Color:       ChannelColor(pos),
		})
	}
	return result, nil
}

// RenderOverlay produces up to overlayCount series per secondary-visible
// channel, one per consecutive row starting at baseRow, color-graded from
// the base palette color at offset 0 to a 50%-darkened shade at the last
// requested offset. Emission stops early when rows run out; the darkening
// fraction's denominator is always the requested overlayCount. Only the
// offset-0 series of a channel carries a legend label.
func RenderOverlay(set *channelset.Set, baseRow, overlayCount int, sampleIntervalSec float64) (Result, error) {
	if err := ValidateInterval(sampleIntervalSec); err != nil {
		return Result{}, err
	}
	if set.RowCount() == 0 {
		return Result{}, ErrRowOutOfRange
	}

	if overlayCount < 1 {
		overlayCount = 1
	}
	if overlayCount > MaxOverlayCount {
		overlayCount = MaxOverlayCount
	}
	if baseRow < 0 {
		baseRow = 0
	}
	if baseRow > set.RowCount()-1 {
		baseRow = set.RowCount() - 1
	}

	result := Result{Time: timeAxis(set.SampleCount(), sampleIntervalSec)}
	for pos, ch := range set.Channels() {
		if !ch.ShowOnSecondary {
			continue
		}
		base := ChannelColor(pos)
		for offset := 0; offset < overlayCount; offset++ {
			row := baseRow + offset
			if row >= set.RowCount() || row >= ch.RowCount() {
				break
			}
			frac := 0.0
			if overlayCount > 1 {
				frac = float64(offset) / float64(overlayCount-1)
			}
			label := ""
			if offset == 0 {
				label = ch.Name
			}
			result.Series = append(result.Series, Series{
				ChannelName: ch.Name,
				Row:         row,
				Label:       label,
				Values:      calibrateRow(&ch, row),
				Color:       Darken(base, 0.5*frac),
			})
		}
	}
	return result, nil
}

// timeAxis builds time[i] = i * dt for i in [0, n).
func timeAxis(n int, dt float64) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i) * dt
	}
	return axis
}

// calibrateRow returns a fresh slice of (raw + bias) * scale over one row.
func calibrateRow(ch *types.Channel, row int) []float64 {
	values := append([]float64(nil), ch.Samples[row]...)
	floats.AddConst(ch.Bias, values)
	floats.Scale(ch.Scale, values)
	return values
}
