package builder

import (
	"io"

	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
	"github.com/joeydtaylor/scopecore/pkg/internal/configstore"
	"github.com/joeydtaylor/scopecore/pkg/internal/exporter"
)

// WriteParquet flattens the set's channels into a parquet file of calibrated
// samples.
func WriteParquet(w io.Writer, set *channelset.Set) error {
	return exporter.WriteParquet(w, set)
}

// WriteSnapshot writes a gzip-compressed backup of the session's calibration
// state.
func WriteSnapshot(w io.Writer, set *channelset.Set, sampleIntervalSec float64) error {
	return exporter.WriteSnapshot(w, set, sampleIntervalSec)
}

// ReadSnapshot restores a configuration store from a snapshot.
func ReadSnapshot(r io.Reader) (*configstore.Store, error) {
	return exporter.ReadSnapshot(r)
}
