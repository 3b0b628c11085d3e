package types

// Calibration is the (bias, scale) pair that converts a raw sample into a
// physical unit: value = (raw + bias) * scale.
type Calibration struct {
	Bias  float64
	Scale float64
}

// ConfigEntry is the persisted calibration and per-chart visibility for one
// normalized channel key. It carries no sample data.
type ConfigEntry struct {
	Bias         float64 `json:"bias"`
	Scale        float64 `json:"scale"`
	ShowOnChart1 bool    `json:"showOnChart1"`
	ShowOnChart2 bool    `json:"showOnChart2"`
}

// Channel is one loaded waveform recording: a rectangular raw sample matrix
// plus the calibration and visibility state attached at load time.
//
// Samples is rows x SampleCount and rectangular by construction; short rows
// are a parse-time concern, never a shape variance here. Only Bias, Scale and
// the two visibility flags are mutated after creation.
type Channel struct {
	Name            string      // Display label, file base name without extension.
	Key             string      // Normalized matching key derived from Name.
	Samples         [][]float64 // Raw samples, rectangular rows x columns.
	Bias            float64
	Scale           float64
	ShowOnPrimary   bool // Contributes to the single-row (primary) chart.
	ShowOnSecondary bool // Contributes to the overlay (secondary) chart.
}

// RowCount returns the number of data rows in the channel's matrix.
func (c *Channel) RowCount() int {
	return len(c.Samples)
}

// SampleCount returns the per-row sample count, zero for an empty matrix.
func (c *Channel) SampleCount() int {
	if len(c.Samples) == 0 {
		return 0
	}
	return len(c.Samples[0])
}

// Value returns the calibrated value at (row, col): (raw + bias) * scale.
// The caller is responsible for bounds.
func (c *Channel) Value(row, col int) float64 {
	return (c.Samples[row][col] + c.Bias) * c.Scale
}
