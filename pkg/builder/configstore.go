package builder

import (
	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
	"github.com/joeydtaylor/scopecore/pkg/internal/configstore"
	"github.com/joeydtaylor/scopecore/pkg/internal/waveform"
)

// NewConfigStore returns an empty store with the default sample interval.
func NewConfigStore() *configstore.Store {
	return configstore.NewStore()
}

// LoadConfig parses persisted configuration bytes, merging any legacy list
// entries. On failure the caller should fall back to NewConfigStore().
func LoadConfig(data []byte) (*configstore.Store, error) {
	return configstore.Load(data)
}

// LoadConfigFile reads the configuration file at path. A missing or corrupt
// file yields a usable default store alongside the error.
func LoadConfigFile(path string) (*configstore.Store, error) {
	return configstore.LoadFile(path)
}

// SaveConfig serializes the set's current calibration state. The interval
// is validated first; on rejection the caller retains its last valid value.
func SaveConfig(set *channelset.Set, sampleIntervalSec float64) ([]byte, error) {
	if err := waveform.ValidateInterval(sampleIntervalSec); err != nil {
		return nil, err
	}
	return configstore.Save(set.Channels(), sampleIntervalSec)
}

// SaveConfigFile atomically persists the set's calibration state to path.
func SaveConfigFile(path string, set *channelset.Set, sampleIntervalSec float64) error {
	if err := waveform.ValidateInterval(sampleIntervalSec); err != nil {
		return err
	}
	return configstore.FromChannels(set.Channels(), sampleIntervalSec).SaveFile(path)
}
