package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emojiku_backend/internals/constants"
)

func rangeWindow() TimeWindow {
	return NewDayRangeWindow(
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
	)
}

func TestSummarizeRangePercentages(t *testing.T) {
	w := rangeWindow()
	at := w.Start.Add(12 * time.Hour)

	// 3× smile (tipe 2), 2× neutral (tipe 5) → 60% / 40%
	events := []Event{
		ev("a", 2, at),
		ev("b", 2, at.Add(time.Hour)),
		ev("c", 2, at.Add(2*time.Hour)),
		ev("d", 5, at),
		ev("e", 5, at.Add(time.Hour)),
	}

	s, err := SummarizeRange(events, w)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Total())

	slices, err := s.PieData()
	require.NoError(t, err)
	require.Len(t, slices, 2, "kategori nol tidak ikut pie")

	byType := map[int]PieSlice{}
	for _, sl := range slices {
		byType[sl.Type] = sl
	}
	assert.InDelta(t, 60.0, byType[2].Percent, 1e-9)
	assert.InDelta(t, 40.0, byType[5].Percent, 1e-9)

	// jumlah persen genap 100 karena total dihitung sekali
	sum := 0.0
	for _, sl := range slices {
		sum += sl.Percent
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestBarDataAlwaysTenCategories(t *testing.T) {
	w := rangeWindow()
	s, err := SummarizeRange([]Event{ev("a", 4, w.Start)}, w)
	require.NoError(t, err)

	bars := s.BarData()
	require.Len(t, bars, 10, "bar chart menampilkan semua kategori termasuk nol")
	for i, b := range bars {
		assert.Equal(t, i+1, b.Type)
		assert.Equal(t, constants.EmojiTypeLabel(i+1), b.Label)
	}
	assert.Equal(t, 1, bars[4-1].Count)
	assert.Equal(t, 0, bars[9-1].Count)
}

func TestPieDataEmpty(t *testing.T) {
	s, err := SummarizeRange(nil, rangeWindow())
	require.NoError(t, err)

	_, err = s.PieData()
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRowsSortedNewestFirst(t *testing.T) {
	w := rangeWindow()
	events := []Event{
		ev("old", 1, w.Start.Add(time.Hour)),
		ev("new", 2, w.Start.Add(48*time.Hour)),
		ev("mid", 3, w.Start.Add(24*time.Hour)),
		ev("legacy", 77, w.Start.Add(30*time.Hour)), // tersaring, tidak ikut
	}

	s, err := SummarizeRange(events, w)
	require.NoError(t, err)

	rows := s.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "new", rows[0].EmojiID)
	assert.Equal(t, "mid", rows[1].EmojiID)
	assert.Equal(t, "old", rows[2].EmojiID)

	// label ikut terisi dari tabel tipe
	assert.Equal(t, "smile", rows[0].Label)
}

func TestSummarizeRangeSingleBucket(t *testing.T) {
	w := rangeWindow()
	events := []Event{
		ev("a", 1, w.Start),
		ev("b", 1, w.End),
	}

	s, err := SummarizeRange(events, w)
	require.NoError(t, err)

	// seluruh window = satu bucket dengan key = start
	require.Len(t, s.Matrix.Buckets, 1)
	assert.Equal(t, w.Start, s.Matrix.Buckets[0])
	assert.Equal(t, 2, s.Matrix.Count(w.Start, 1))
}
