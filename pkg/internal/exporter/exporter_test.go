package exporter_test

import (
	"bytes"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
	"github.com/joeydtaylor/scopecore/pkg/internal/exporter"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
)

// TestWriteParquet_RoundTrip flattens a small set and reads the records
// back from the produced file.
func TestWriteParquet_RoundTrip(t *testing.T) {
	set := channelset.NewSet([]types.Channel{
		{Name: "ch0", Samples: [][]float64{{1, 2}, {3, 4}}, Bias: 1, Scale: 2},
		{Name: "ch1", Samples: [][]float64{{5, 6}, {7, 8}}, Scale: 1},
	})

	var buf bytes.Buffer
	require.NoError(t, exporter.WriteParquet(&buf, set))

	records, err := parquet.Read[exporter.SampleRecord](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, records, 8)

	first := records[0]
	assert.Equal(t, "ch0", first.Channel)
	assert.Equal(t, int32(0), first.Row)
	assert.Equal(t, int32(0), first.Sample)
	assert.Equal(t, 1.0, first.Raw)
	assert.Equal(t, 4.0, first.Value) // (1 + 1) * 2

	last := records[7]
	assert.Equal(t, "ch1", last.Channel)
	assert.Equal(t, int32(1), last.Row)
	assert.Equal(t, int32(1), last.Sample)
	assert.Equal(t, 8.0, last.Raw)
}

// TestWriteParquet_EmptySet still produces a readable file.
func TestWriteParquet_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exporter.WriteParquet(&buf, channelset.NewSet(nil)))

	records, err := parquet.Read[exporter.SampleRecord](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestSnapshot_RoundTrip restores calibration state from a compressed
// snapshot.
func TestSnapshot_RoundTrip(t *testing.T) {
	set := channelset.NewSet([]types.Channel{
		{Name: "sensor one", Bias: -744, Scale: 0.006105, ShowOnPrimary: true,
			Samples: [][]float64{{1}}},
	})

	var buf bytes.Buffer
	require.NoError(t, exporter.WriteSnapshot(&buf, set, 0.002))

	store, err := exporter.ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0.002, store.SampleIntervalSec)

	entry, ok := store.Lookup("SENSOR_ONE")
	require.True(t, ok)
	assert.Equal(t, -744.0, entry.Bias)
	assert.Equal(t, 0.006105, entry.Scale)
	assert.True(t, entry.ShowOnChart1)
}

// TestReadSnapshot_NotGzip fails on uncompressed input.
func TestReadSnapshot_NotGzip(t *testing.T) {
	_, err := exporter.ReadSnapshot(bytes.NewReader([]byte(`{"fileMap":{}}`)))
	assert.Error(t, err)
}
