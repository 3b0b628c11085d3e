package builder

import (
	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
)

// Channel is exported from the internal types package.
type Channel = types.Channel

// NewChannelSet builds the session channel collection from loaded channels.
func NewChannelSet(channels []types.Channel, options ...types.Option[*channelset.Set]) *channelset.Set {
	return channelset.NewSet(channels, options...)
}

// ChannelSetWithLogger adds one or more loggers to the set.
func ChannelSetWithLogger(logger ...types.Logger) types.Option[*channelset.Set] {
	return channelset.WithLogger(logger...)
}

// ChannelSetWithComponentMetadata adds component metadata overrides.
func ChannelSetWithComponentMetadata(name string, id string) types.Option[*channelset.Set] {
	return channelset.WithComponentMetadata(name, id)
}
