package channelset_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/scopecore/pkg/internal/channelset"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
)

func matrix(rows, cols int, fill float64) [][]float64 {
	m := make([][]float64, rows)
	for r := range m {
		m[r] = make([]float64, cols)
		for c := range m[r] {
			m[r][c] = fill
		}
	}
	return m
}

// TestNewSet_DimensionsFromFirstChannel verifies declared dimensions and a
// clean shape flag for uniform channels.
func TestNewSet_DimensionsFromFirstChannel(t *testing.T) {
	set := channelset.NewSet([]types.Channel{
		{Name: "a", Samples: matrix(3, 4, 0)},
		{Name: "b", Samples: matrix(3, 4, 0)},
	})

	if set.RowCount() != 3 || set.SampleCount() != 4 {
		t.Errorf("Expected declared 3x4, got %dx%d", set.RowCount(), set.SampleCount())
	}
	if set.ShapeMismatch() {
		t.Error("Uniform channels must not flag a shape mismatch")
	}
	if set.Len() != 2 {
		t.Errorf("Expected 2 channels, got %d", set.Len())
	}
}

// TestNewSet_ShapeMismatchFlagged keeps the set usable but flags deviation.
func TestNewSet_ShapeMismatchFlagged(t *testing.T) {
	set := channelset.NewSet([]types.Channel{
		{Name: "a", Samples: matrix(3, 4, 0)},
		{Name: "short", Samples: matrix(2, 4, 0)},
	})

	if !set.ShapeMismatch() {
		t.Error("Deviating row count must flag a shape mismatch")
	}
	if set.RowCount() != 3 {
		t.Errorf("Declared dimensions must come from the first channel, got rows=%d", set.RowCount())
	}
}

// TestNewSet_Empty yields zero dimensions and no mismatch.
func TestNewSet_Empty(t *testing.T) {
	set := channelset.NewSet(nil)
	if set.Len() != 0 || set.RowCount() != 0 || set.SampleCount() != 0 {
		t.Error("Empty set must have zero dimensions")
	}
	if set.ShapeMismatch() {
		t.Error("Empty set must not flag a mismatch")
	}
}

// TestEditNotifications verifies setters mutate the channel and publish a
// change to every subscriber.
func TestEditNotifications(t *testing.T) {
	set := channelset.NewSet([]types.Channel{
		{Name: "a", Samples: matrix(1, 2, 0), Scale: 1},
	})

	var changes []channelset.Change
	set.Subscribe(func(c channelset.Change) { changes = append(changes, c) })

	set.SetBias(0, 5)
	set.SetScale(0, 2)
	set.SetVisibility(0, false, true)

	ch := set.Channel(0)
	if ch.Bias != 5 || ch.Scale != 2 {
		t.Errorf("Edits not applied: bias=%v scale=%v", ch.Bias, ch.Scale)
	}
	if ch.ShowOnPrimary || !ch.ShowOnSecondary {
		t.Errorf("Visibility edit not applied: %v/%v", ch.ShowOnPrimary, ch.ShowOnSecondary)
	}

	want := []channelset.Change{
		{Index: 0, Field: channelset.FieldBias},
		{Index: 0, Field: channelset.FieldScale},
		{Index: 0, Field: channelset.FieldVisibility},
	}
	if len(changes) != len(want) {
		t.Fatalf("Expected %d notifications, got %d", len(want), len(changes))
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("Notification %d: expected %+v, got %+v", i, want[i], changes[i])
		}
	}
}

// TestEditOutOfRange neither panics nor notifies.
func TestEditOutOfRange(t *testing.T) {
	set := channelset.NewSet([]types.Channel{{Name: "a", Samples: matrix(1, 1, 0)}})

	notified := false
	set.Subscribe(func(channelset.Change) { notified = true })

	set.SetBias(5, 1)
	set.SetScale(-1, 1)
	if notified {
		t.Error("Out-of-range edits must not notify subscribers")
	}
}

// TestSummarize computes calibrated statistics.
func TestSummarize(t *testing.T) {
	set := channelset.NewSet([]types.Channel{
		{
			Name:    "a",
			Samples: [][]float64{{1, 2}, {3, 4}},
			Bias:    1,
			Scale:   2, // calibrated: 4, 6, 8, 10
		},
	})

	sum := set.Summarize(0)
	if sum.Count != 4 {
		t.Fatalf("Expected 4 samples, got %d", sum.Count)
	}
	if sum.Min != 4 || sum.Max != 10 {
		t.Errorf("Expected min/max 4/10, got %v/%v", sum.Min, sum.Max)
	}
	if sum.Mean != 7 {
		t.Errorf("Expected mean 7, got %v", sum.Mean)
	}
	wantStd := math.Sqrt((9.0 + 1.0 + 1.0 + 9.0) / 3.0)
	if math.Abs(sum.StdDev-wantStd) > 1e-12 {
		t.Errorf("Expected stddev %v, got %v", wantStd, sum.StdDev)
	}
}

// TestSummarizeOutOfRange yields the zero summary.
func TestSummarizeOutOfRange(t *testing.T) {
	set := channelset.NewSet(nil)
	if sum := set.Summarize(0); sum != (channelset.Summary{}) {
		t.Errorf("Expected zero summary, got %+v", sum)
	}
}
