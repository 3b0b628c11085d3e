package csvloader

import "github.com/joeydtaylor/scopecore/pkg/internal/types"

// MaxChannels is the number of channels a session is expected to hold; the
// default calibration table and the render palette are sized to it.
const MaxChannels = 16

// DefaultCalibrations maps channel load position to the calibration applied
// when no persisted configuration matches. Positions 0-7 carry the
// acquisition-board defaults: the raw ADC midpoint offset and the
// volts-per-count gain. Positions 8-15 are identity.
var DefaultCalibrations = [MaxChannels]types.Calibration{
	{Bias: -744, Scale: 0.006105},
	{Bias: -744, Scale: 0.006105},
	{Bias: -744, Scale: 0.006105},
	{Bias: -744, Scale: 0.006105},
	{Bias: -744, Scale: 0.006105},
	{Bias: -744, Scale: 0.006105},
	{Bias: -744, Scale: 0.006105},
	{Bias: -744, Scale: 0.006105},
	{Bias: 0, Scale: 1},
	{Bias: 0, Scale: 1},
	{Bias: 0, Scale: 1},
	{Bias: 0, Scale: 1},
	{Bias: 0, Scale: 1},
	{Bias: 0, Scale: 1},
	{Bias: 0, Scale: 1},
	{Bias: 0, Scale: 1},
}
