package main

import (
	"fmt"
	"os"

	"github.com/joeydtaylor/scopecore/pkg/builder"
)

const configPath = "scopecore_config.json"

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: waveform_load_example <channel.csv> [more.csv ...]")
		os.Exit(1)
	}

	logger := builder.NewLogger(builder.LoggerWithLevel(builder.DebugLevel))
	defer logger.Flush()

	// Persisted calibration is optional; a missing or corrupt file just
	// means defaults.
	store, err := builder.LoadConfigFile(configPath)
	if err != nil {
		logger.Warn("No usable configuration; starting from defaults", "error", err)
	}

	set, warnings, err := builder.LoadChannels(os.Args[1:], store, builder.CSVLoaderWithLogger(logger))
	if err != nil {
		logger.Error("No channels loaded", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		fmt.Println("warning:", w)
	}
	fmt.Printf("loaded %d channel(s), %d row(s) x %d sample(s)\n", set.Len(), set.RowCount(), set.SampleCount())

	for i, ch := range set.Channels() {
		sum := set.Summarize(i)
		fmt.Printf("  %-20s key=%-20s bias=%g scale=%g min=%.4f max=%.4f mean=%.4f\n",
			ch.Name, ch.Key, ch.Bias, ch.Scale, sum.Min, sum.Max, sum.Mean)
	}

	// Render the first row for the primary chart.
	result, err := builder.RenderSingleRow(set, 0, store.SampleIntervalSec)
	if err != nil {
		logger.Error("Render failed", "error", err)
		os.Exit(1)
	}
	for _, s := range result.Series {
		preview := s.Values
		if len(preview) > 4 {
			preview = preview[:4]
		}
		r, g, b := s.Color.RGB255()
		fmt.Printf("  series %-20s color=#%02x%02x%02x values=%v...\n", s.Label, r, g, b, preview)
	}

	// Overlay the first few rows for the secondary chart.
	overlay, err := builder.Render(set, builder.ViewRequest{
		Mode:              builder.Overlay,
		BaseRow:           0,
		OverlayCount:      4,
		SampleIntervalSec: store.SampleIntervalSec,
	})
	if err != nil {
		logger.Error("Overlay render failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("overlay emitted %d series\n", len(overlay.Series))

	// Persist the session's calibration state for the next run.
	if err := builder.SaveConfigFile(configPath, set, store.SampleIntervalSec); err != nil {
		logger.Error("Saving configuration failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("configuration saved to", configPath)
}
