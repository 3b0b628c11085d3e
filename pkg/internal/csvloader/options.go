package csvloader

import "github.com/joeydtaylor/scopecore/pkg/internal/types"

// WithLogger attaches one or more logger instances to the loader.
func WithLogger(logger ...types.Logger) types.Option[*Loader] {
	return func(l *Loader) {
		l.ConnectLogger(logger...)
	}
}

// WithDefaults overrides the position-indexed default calibration table.
// Positions beyond the table fall back to identity calibration.
func WithDefaults(defaults []types.Calibration) types.Option[*Loader] {
	return func(l *Loader) {
		l.defaults = defaults
	}
}

// WithComponentMetadata sets custom metadata for the loader component.
func WithComponentMetadata(name string, id string) types.Option[*Loader] {
	return func(l *Loader) {
		l.componentMetadata.Name = name
		l.componentMetadata.ID = id
	}
}
