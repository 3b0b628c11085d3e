// Package configstore persists per-channel calibration entries keyed by
// normalized channel name, together with the global sample interval.
//
// Two persisted shapes are accepted on load: the current map form
// ("fileMap") and the legacy list form ("channels"), which is merged into
// the map by normalizing each legacy name. Save always emits the map form
// and an empty legacy list for compatibility.
package configstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/joeydtaylor/scopecore/pkg/internal/keynorm"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
	"github.com/joeydtaylor/scopecore/pkg/internal/utils"
)

// ErrConfigLoad marks persisted configuration that is present but unparsable.
// Callers recover by falling back to NewStore() rather than aborting startup.
var ErrConfigLoad = errors.New("configstore: unparsable configuration")

// DefaultSampleInterval is the sample spacing assumed when no valid interval
// has been persisted, in seconds.
const DefaultSampleInterval = 0.001

// legacyChannel is the v1 persisted shape: a list entry keyed by raw name.
type legacyChannel struct {
	Name         string  `json:"name"`
	Bias         float64 `json:"bias"`
	Scale        float64 `json:"scale"`
	ShowOnChart1 bool    `json:"showOnChart1"`
	ShowOnChart2 bool    `json:"showOnChart2"`
}

// document is the on-disk JSON shape, v2 map plus the v1 list field.
type document struct {
	SampleIntervalSec float64                      `json:"sampleIntervalSec"`
	FileMap           map[string]types.ConfigEntry `json:"fileMap"`
	Channels          []legacyChannel              `json:"channels"`
}

// Store holds calibration entries keyed by normalized name. Keys are folded
// to upper case so lookups are case-insensitive. A Store is rebuilt wholesale
// on load and save (copy-on-replace); it is not safe for concurrent mutation.
type Store struct {
	SampleIntervalSec float64
	entries           map[string]types.ConfigEntry
}

// NewStore returns an empty store with the default sample interval.
func NewStore() *Store {
	return &Store{
		SampleIntervalSec: DefaultSampleInterval,
		entries:           make(map[string]types.ConfigEntry),
	}
}

// Load parses persisted configuration bytes. A missing or non-positive sample
// interval falls back to DefaultSampleInterval. Legacy list entries are
// merged into the map by normalized name, later entries overwriting earlier
// ones. Unparsable input fails with ErrConfigLoad.
func Load(data []byte) (*Store, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}

	s := NewStore()
	if doc.SampleIntervalSec > 0 && !math.IsInf(doc.SampleIntervalSec, 1) {
		s.SampleIntervalSec = doc.SampleIntervalSec
	}
	for key, entry := range doc.FileMap {
		folded := strings.ToUpper(strings.TrimSpace(key))
		if folded == "" {
			continue
		}
		s.entries[folded] = entry
	}
	// Legacy v1 merge: list order is preserved, so collisions after
	// normalization resolve last-write-wins.
	for _, lc := range doc.Channels {
		key := keynorm.Normalize(lc.Name)
		if key == "" {
			continue
		}
		s.entries[key] = types.ConfigEntry{
			Bias:         lc.Bias,
			Scale:        lc.Scale,
			ShowOnChart1: lc.ShowOnChart1,
			ShowOnChart2: lc.ShowOnChart2,
		}
	}
	return s, nil
}

// LoadFile reads and parses the configuration file at path. A missing file
// or unparsable content yields an empty default store and the underlying
// error, so startup can proceed either way.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewStore(), err
	}
	s, err := Load(data)
	if err != nil {
		return NewStore(), err
	}
	return s, nil
}

// FromChannels rebuilds a store from scratch out of the current channel list.
// Channels whose names normalize to the same key resolve last-write-wins.
// This is total: it never fails on valid in-memory state.
func FromChannels(channels []types.Channel, sampleIntervalSec float64) *Store {
	s := NewStore()
	if sampleIntervalSec > 0 && !math.IsInf(sampleIntervalSec, 1) {
		s.SampleIntervalSec = sampleIntervalSec
	}
	for i := range channels {
		ch := &channels[i]
		key := keynorm.Normalize(ch.Name)
		if key == "" {
			continue
		}
		s.entries[key] = types.ConfigEntry{
			Bias:         ch.Bias,
			Scale:        ch.Scale,
			ShowOnChart1: ch.ShowOnPrimary,
			ShowOnChart2: ch.ShowOnSecondary,
		}
	}
	return s
}

// Save serializes the channel list as the v2 map document. The legacy list
// field is emitted empty; legacy entries present at load time are dropped
// here by construction.
func Save(channels []types.Channel, sampleIntervalSec float64) ([]byte, error) {
	return FromChannels(channels, sampleIntervalSec).Marshal()
}

// Marshal emits the store in the on-disk v2 shape.
func (s *Store) Marshal() ([]byte, error) {
	doc := document{
		SampleIntervalSec: s.SampleIntervalSec,
		FileMap:           s.entries,
		Channels:          []legacyChannel{},
	}
	return json.MarshalIndent(doc, "", "  ")
}

// SaveFile atomically writes the store to path.
func (s *Store) SaveFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(path, data, 0644)
}

// Lookup returns the entry for key, matched case-insensitively.
func (s *Store) Lookup(key string) (types.ConfigEntry, bool) {
	entry, ok := s.entries[strings.ToUpper(strings.TrimSpace(key))]
	return entry, ok
}

// Set upserts an entry under the case-folded key.
func (s *Store) Set(key string, entry types.ConfigEntry) {
	folded := strings.ToUpper(strings.TrimSpace(key))
	if folded == "" {
		return
	}
	s.entries[folded] = entry
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Keys returns the stored keys in sorted order, so matching against them is
// deterministic.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
