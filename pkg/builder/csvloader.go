package builder

import (
	"github.com/joeydtaylor/scopecore/pkg/internal/csvloader"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
)

// Calibration is exported from the internal types package.
type Calibration = types.Calibration

// NewCSVLoader creates a CSV channel loader configured with the provided
// options.
func NewCSVLoader(options ...types.Option[*csvloader.Loader]) *csvloader.Loader {
	return csvloader.NewLoader(options...)
}

// CSVLoaderWithLogger adds one or more loggers to the loader.
func CSVLoaderWithLogger(logger ...types.Logger) types.Option[*csvloader.Loader] {
	return csvloader.WithLogger(logger...)
}

// CSVLoaderWithDefaults overrides the position-indexed default calibration
// table.
func CSVLoaderWithDefaults(defaults []types.Calibration) types.Option[*csvloader.Loader] {
	return csvloader.WithDefaults(defaults)
}

// CSVLoaderWithComponentMetadata adds component metadata overrides.
func CSVLoaderWithComponentMetadata(name string, id string) types.Option[*csvloader.Loader] {
	return csvloader.WithComponentMetadata(name, id)
}
