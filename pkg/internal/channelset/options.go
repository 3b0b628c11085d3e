package channelset

import "github.com/joeydtaylor/scopecore/pkg/internal/types"

// WithLogger attaches one or more logger instances to the set.
func WithLogger(logger ...types.Logger) types.Option[*Set] {
	return func(s *Set) {
		s.ConnectLogger(logger...)
	}
}

// WithComponentMetadata sets custom metadata for the set component.
func WithComponentMetadata(name string, id string) types.Option[*Set] {
	return func(s *Set) {
		s.componentMetadata.Name = name
		s.componentMetadata.ID = id
	}
}
