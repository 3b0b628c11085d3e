// Package builder is the public facade over the scopecore internal
// packages: channel loading, configuration persistence, and chart-series
// rendering. External collaborators (window, chart widget, editable grid)
// call these functions with primitive values and receive plain numeric
// results; no rendering or event-loop concerns live here.
package builder

import (
	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
	"github.com/joeydtaylor/scopecore/pkg/internal/configstore"
	"github.com/joeydtaylor/scopecore/pkg/internal/csvloader"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
)

// LoadChannels loads one channel per path in order, resolving calibration
// against store (which may be nil), and aggregates them into a set. Files
// that fail to parse are skipped and reported in warnings; a cross-channel
// shape mismatch is appended to warnings as well. The previous session's
// set is simply abandoned; a load always produces a whole new collection.
func LoadChannels(paths []string, store *configstore.Store, options ...types.Option[*csvloader.Loader]) (*channelset.Set, []string, error) {
	loader := csvloader.NewLoader(options...)
	channels, warnings, err := loader.LoadAll(paths, store)
	if err != nil {
		return nil, warnings, err
	}

	set := channelset.NewSet(channels)
	if set.ShapeMismatch() {
		warnings = append(warnings, "loaded channels have differing row/sample counts; renders use the first channel's dimensions")
	}
	return set, warnings, nil
}
