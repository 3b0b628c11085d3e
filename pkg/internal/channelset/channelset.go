// Package channelset aggregates loaded channels into the in-memory session
// collection, validates cross-channel shape consistency, and notifies
// subscribers when calibration or visibility is edited.
//
// A set's declared dimensions come from its first channel. Channels with
// differing dimensions are permitted but flagged; renders clamp per channel
// rather than indexing past a shorter channel's rows.
package channelset

import (
	"sync"

	"github.com/joeydtaylor/scopecore/pkg/internal/types"
	"github.com/joeydtaylor/scopecore/pkg/internal/utils"
)

// ChangeField identifies which channel field an edit touched.
type ChangeField int

const (
	FieldBias ChangeField = iota
	FieldScale
	FieldVisibility
)

// Change is the notification emitted to subscribers after an edit.
type Change struct {
	Index int // Position of the edited channel in load order.
	Field ChangeField
}

// Set is the session's ordered channel collection. Channel order is load
// order and drives palette color assignment. A new load replaces the whole
// set; only calibration and visibility mutate in place.
type Set struct {
	componentMetadata types.ComponentMetadata
	channels          []types.Channel
	rowCount          int
	sampleCount       int
	shapeMismatch     bool
	loggers           []types.Logger
	loggersLock       sync.Mutex
	subscribers       []func(Change)
	subscribersLock   sync.Mutex
}

// NewSet builds a set from loaded channels. Declared row and sample counts
// come from the first channel; any deviating channel sets the shape-mismatch
// flag, which callers surface as a warning.
func NewSet(channels []types.Channel, options ...types.Option[*Set]) *Set {
	s := &Set{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "CHANNEL_SET",
		},
		channels: channels,
	}
	for _, opt := range options {
		opt(s)
	}

	if len(channels) > 0 {
		s.rowCount = channels[0].RowCount()
		s.sampleCount = channels[0].SampleCount()
		for i := 1; i < len(channels); i++ {
			if channels[i].RowCount() != s.rowCount || channels[i].SampleCount() != s.sampleCount {
				s.shapeMismatch = true
				s.notifyShapeMismatch(&channels[i])
			}
		}
	}
	return s
}

// Len returns the number of channels in the set.
func (s *Set) Len() int {
	return len(s.channels)
}

// RowCount returns the declared row count, taken from the first channel.
func (s *Set) RowCount() int {
	return s.rowCount
}

// SampleCount returns the declared per-row sample count.
func (s *Set) SampleCount() int {
	return s.sampleCount
}

// ShapeMismatch reports whether any channel deviates from the declared
// dimensions. Non-fatal; the set stays usable.
func (s *Set) ShapeMismatch() bool {
	return s.shapeMismatch
}

// Channels returns the channels in load order. The slice is shared, not
// copied; treat it as read-only and use the setters for edits.
func (s *Set) Channels() []types.Channel {
	return s.channels
}

// Channel returns a pointer to the channel at index, or nil if out of range.
func (s *Set) Channel(index int) *types.Channel {
	if index < 0 || index >= len(s.channels) {
		return nil
	}
	return &s.channels[index]
}

// Subscribe registers a callback invoked synchronously after every edit.
func (s *Set) Subscribe(fn func(Change)) {
	if fn == nil {
		return
	}
	s.subscribersLock.Lock()
	defer s.subscribersLock.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// SetBias edits a channel's bias and notifies subscribers.
func (s *Set) SetBias(index int, bias float64) {
	ch := s.Channel(index)
	if ch == nil {
		return
	}
	ch.Bias = bias
	s.publish(Change{Index: index, Field: FieldBias})
}

// SetScale edits a channel's scale and notifies subscribers.
func (s *Set) SetScale(index int, scale float64) {
	ch := s.Channel(index)
	if ch == nil {
		return
	}
	ch.Scale = scale
	s.publish(Change{Index: index, Field: FieldScale})
}

// SetVisibility edits a channel's per-chart visibility and notifies
// subscribers.
func (s *Set) SetVisibility(index int, primary, secondary bool) {
	ch := s.Channel(index)
	if ch == nil {
		return
	}
	ch.ShowOnPrimary = primary
	ch.ShowOnSecondary = secondary
	s.publish(Change{Index: index, Field: FieldVisibility})
}

func (s *Set) publish(change Change) {
	s.subscribersLock.Lock()
	subs := make([]func(Change), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subscribersLock.Unlock()

	for _, fn := range subs {
		fn(change)
	}
	s.notifyEdit(change)
}
