// Package exporter writes loaded sessions to portable formats: a flattened
// parquet table of calibrated samples for downstream analysis tooling, and
// a gzip-compressed configuration snapshot for session backup.
package exporter

import (
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
)

// SampleRecord is one flattened sample: the channel it came from, its
// (row, sample) position, and both the raw and calibrated values.
type SampleRecord struct {
	Channel string  `parquet:"channel"`
	Row     int32   `parquet:"row"`
	Sample  int32   `parquet:"sample"`
	Raw     float64 `parquet:"raw"`
	Value   float64 `parquet:"value"`
}

// writeBatchSize bounds how many records are buffered per parquet write.
const writeBatchSize = 4096

// WriteParquet flattens every channel of the set into SampleRecord rows and
// writes them as a parquet file.
func WriteParquet(w io.Writer, set *channelset.Set) error {
	pw := parquet.NewGenericWriter[SampleRecord](w)

	batch := make([]SampleRecord, 0, writeBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := pw.Write(batch); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for _, ch := range set.Channels() {
		for r := 0; r < ch.RowCount(); r++ {
			for c := 0; c < len(ch.Samples[r]); c++ {
				batch = append(batch, SampleRecord{
					Channel: ch.Name,
					Row:     int32(r),
					Sample:  int32(c),
					Raw:     ch.Samples[r][c],
					Value:   ch.Value(r, c),
				})
				if len(batch) == writeBatchSize {
					if err := flush(); err != nil {
						return err
					}
				}
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}
	return pw.Close()
}
