package exporter

import (
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
	"github.com/joeydtaylor/scopecore/pkg/internal/configstore"
)

// WriteSnapshot writes the session's persisted-configuration document,
// gzip-compressed, as a portable backup of calibration and visibility state.
func WriteSnapshot(w io.Writer, set *channelset.Set, sampleIntervalSec float64) error {
	data, err := configstore.Save(set.Channels(), sampleIntervalSec)
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(w)
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadSnapshot restores a configuration store from a snapshot written by
// WriteSnapshot.
func ReadSnapshot(r io.Reader) (*configstore.Store, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return configstore.Load(data)
}
