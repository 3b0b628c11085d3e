package types

// RenderMode selects between the two chart views the engine serves.
type RenderMode int

const (
	// SingleRow plots one row of every visible channel against time.
	SingleRow RenderMode = iota
	// Overlay plots up to OverlayCount consecutive rows of every visible
	// channel, color-graded by row offset.
	Overlay
)

// ViewRequest describes one plot action. It is constructed per action and
// never persisted.
type ViewRequest struct {
	Mode              RenderMode
	BaseRow           int     // First (or only) row to plot.
	OverlayCount      int     // Number of consecutive rows for Overlay, clamped to [1, 20].
	SampleIntervalSec float64 // Seconds between adjacent samples within a row.
}
