package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowValidate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	ok := TimeWindow{Start: now.Add(-time.Hour), End: now}
	assert.NoError(t, ok.Validate(now))

	// start > end
	reversed := TimeWindow{Start: now, End: now.Add(-time.Hour)}
	assert.ErrorIs(t, reversed.Validate(now), ErrInvalidWindow)

	// start di masa depan
	future := TimeWindow{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)}
	assert.ErrorIs(t, future.Validate(now), ErrInvalidWindow)

	// window satu titik (start == end) sah
	point := TimeWindow{Start: now, End: now}
	assert.NoError(t, point.Validate(now))
}

func TestWindowContainsInclusive(t *testing.T) {
	w := TimeWindow{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, w.Contains(w.Start), "batas bawah inklusif")
	assert.True(t, w.Contains(w.End), "batas atas inklusif")
	assert.True(t, w.Contains(w.Start.Add(time.Hour)))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.End.Add(time.Nanosecond)))
}

func TestNewDayRangeWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 13, 45, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 2, 10, 0, 0, time.UTC)

	w := NewDayRangeWindow(start, end)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), w.Start)

	// end diperluas ke akhir hari: event jam 23:59:59 tanggal terakhir ikut
	lastMoment := time.Date(2025, 6, 3, 23, 59, 59, 0, time.UTC)
	assert.True(t, w.Contains(lastMoment))

	nextDay := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	assert.False(t, w.Contains(nextDay))
}
