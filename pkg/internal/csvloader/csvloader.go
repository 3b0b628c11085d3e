// Package csvloader parses single-channel CSV waveform recordings into
// rectangular numeric matrices and attaches calibration recovered through
// key normalization and fuzzy configuration matching.
//
// The expected layout is one header line (content ignored), then data lines
// of two leading non-data columns followed by N numeric sample columns,
// delimited by comma, semicolon, or tab. Parsing is defensive: blank lines
// are tolerated, the narrowest row determines the matrix width, and
// unparsable numeric fields degrade to 0.0 instead of failing the load.
package csvloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joeydtaylor/scopecore/pkg/internal/configstore"
	"github.com/joeydtaylor/scopecore/pkg/internal/keymatch"
	"github.com/joeydtaylor/scopecore/pkg/internal/keynorm"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
	"github.com/joeydtaylor/scopecore/pkg/internal/utils"
)

// timestampColumns is the number of leading non-data fields on every line.
const timestampColumns = 2

var (
	// ErrCSVFormat marks a file whose shape cannot yield a sample matrix.
	// It is fatal to that file only; batch loads skip the file and report it.
	ErrCSVFormat = errors.New("csvloader: bad csv shape")

	// ErrNoDataRows means no data lines remained after header removal.
	ErrNoDataRows = fmt.Errorf("%w: no data rows", ErrCSVFormat)

	// ErrNoDataColumns means no sample columns remained after the
	// timestamp-column skip.
	ErrNoDataColumns = fmt.Errorf("%w: no data columns found", ErrCSVFormat)
)

// Loader reads CSV channel files. It holds no per-file state; Load is a pure
// mapping from (file contents, load position, known keys) to a Channel.
type Loader struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex
	defaults          []types.Calibration
}

// NewLoader creates a loader configured with the provided options. The
// position-indexed default calibration table defaults to DefaultCalibrations.
func NewLoader(options ...types.Option[*Loader]) *Loader {
	l := &Loader{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "CSV_LOADER",
		},
		defaults: DefaultCalibrations[:],
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Load parses the file at path into a Channel. channelIndex is the channel's
// load position, used for default-calibration fallback; store supplies the
// persisted calibration candidates and may be nil.
func (l *Loader) Load(path string, channelIndex int, store *configstore.Store) (types.Channel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		l.notifyReadError(path, err)
		return types.Channel{}, err
	}

	samples, err := parseMatrix(string(raw))
	if err != nil {
		l.notifyFormatError(path, err)
		return types.Channel{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	ch := types.Channel{
		Name:    name,
		Key:     keynorm.Normalize(name),
		Samples: samples,
	}
	l.resolveCalibration(&ch, channelIndex, store)

	l.notifyLoaded(&ch, path, channelIndex)
	return ch, nil
}

// LoadAll loads every path in order, isolating CSV format failures to the
// offending file: such files are skipped and reported in warnings. Read
// errors are isolated the same way. Only zero successfully loaded channels
// is an error.
func (l *Loader) LoadAll(paths []string, store *configstore.Store) ([]types.Channel, []string, error) {
	var channels []types.Channel
	var warnings []string
	for _, path := range paths {
		ch, err := l.Load(path, len(channels), store)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", filepath.Base(path), err))
			continue
		}
		channels = append(channels, ch)
	}
	if len(channels) == 0 {
		return nil, warnings, fmt.Errorf("%w: no channels loaded from %d file(s)", ErrCSVFormat, len(paths))
	}
	return channels, warnings, nil
}

// parseMatrix turns file contents into a rectangular rows x numSamples
// matrix. The narrowest data line determines numSamples; wider lines have
// their excess trailing fields ignored.
func parseMatrix(contents string) ([][]float64, error) {
	var lines []string
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		// One header line plus at least one data line.
		return nil, ErrNoDataRows
	}
	dataLines := lines[1:] // The first remaining line is always a header.

	fieldsPerLine := make([][]string, len(dataLines))
	numSamples := -1
	for i, line := range dataLines {
		fields := splitFields(line)
		fieldsPerLine[i] = fields
		sampleCols := len(fields) - timestampColumns
		if sampleCols < 0 {
			sampleCols = 0
		}
		if numSamples < 0 || sampleCols < numSamples {
			numSamples = sampleCols
		}
	}
	if numSamples <= 0 {
		return nil, ErrNoDataColumns
	}

	matrix := make([][]float64, len(dataLines))
	for r, fields := range fieldsPerLine {
		row := make([]float64, numSamples)
		for c := 0; c < numSamples; c++ {
			// Unparsable or missing fields degrade to 0.0 rather than
			// failing the row.
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[timestampColumns+c]), 64)
			if err == nil {
				row[c] = v
			}
		}
		matrix[r] = row
	}
	return matrix, nil
}

// splitFields tokenizes a line on comma, semicolon, or tab, preserving empty
// fields so column positions stay stable.
func splitFields(line string) []string {
	fields := make([]string, 0, 8)
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ',', ';', '\t':
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}
	return append(fields, line[start:])
}

// resolveCalibration attaches bias/scale/visibility: a fuzzy configuration
// match wins; otherwise the position-indexed default table applies, and
// beyond the table identity calibration is used. Default visibility is
// primary-only either way.
func (l *Loader) resolveCalibration(ch *types.Channel, channelIndex int, store *configstore.Store) {
	if store != nil {
		if matched, ok := keymatch.FindBestKey(ch.Key, store.Keys()); ok {
			if entry, found := store.Lookup(matched); found {
				ch.Bias = entry.Bias
				ch.Scale = entry.Scale
				ch.ShowOnPrimary = entry.ShowOnChart1
				ch.ShowOnSecondary = entry.ShowOnChart2
				l.notifyConfigMatch(ch, matched)
				return
			}
		}
	}

	cal := types.Calibration{Bias: 0, Scale: 1}
	if channelIndex >= 0 && channelIndex < len(l.defaults) {
		cal = l.defaults[channelIndex]
	}
	ch.Bias = cal.Bias
	ch.Scale = cal.Scale
	ch.ShowOnPrimary = true
	ch.ShowOnSecondary = false
	l.notifyDefaultCalibration(ch, channelIndex)
}
