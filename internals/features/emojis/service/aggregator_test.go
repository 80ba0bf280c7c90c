package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emojiku_backend/internals/constants"
)

func ev(id string, emojiType int, at time.Time) Event {
	return Event{
		ID:        id,
		StudentID: "student-" + id,
		CourseID:  "course-1",
		Type:      emojiType,
		SentAt:    at,
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	m, err := AggregateTimeline(nil, now)
	require.NoError(t, err, "input kosong bukan error")

	assert.Equal(t, 0, m.Total())
	for _, id := range constants.EmojiTypeIDs {
		for _, b := range m.Buckets {
			assert.Equal(t, 0, m.Count(b, id))
		}
	}
}

func TestAggregateReversedWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	w := TimeWindow{Start: now, End: now.Add(-time.Hour)}

	_, err := Aggregate(nil, w, HourlyBucketing{})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestAggregateDenseMatrix(t *testing.T) {
	// setiap kategori hadir di setiap bucket, termasuk yang count-nya 0
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	events := []Event{
		ev("a", 2, now.Add(-30*time.Minute)),
		ev("b", 2, now.Add(-90*time.Minute)),
		ev("c", 7, now.Add(-30*time.Minute)),
	}

	m, err := AggregateTimeline(events, now)
	require.NoError(t, err)

	require.NotEmpty(t, m.Buckets)
	for _, id := range constants.EmojiTypeIDs {
		assert.Len(t, m.Series(id), len(m.Buckets))
	}
	assert.Equal(t, 3, m.Total())

	// cross-check: total per kategori == jumlah event kategori itu
	totals := m.CategoryTotals()
	require.Len(t, totals, 10)
	assert.Equal(t, 2, totals[2-1])
	assert.Equal(t, 1, totals[7-1])
	assert.Equal(t, 0, totals[5-1])
}

func TestAggregateDropsUnknownTypesAndOutOfWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	events := []Event{
		ev("ok", 3, now.Add(-time.Hour)),
		ev("legacy", 42, now.Add(-time.Hour)),          // tipe di luar 1..10
		ev("zero", 0, now.Add(-time.Hour)),             // tipe 0
		ev("old", 3, now.Add(-TimelineDuration-time.Hour)), // di luar window
	}

	m, err := AggregateTimeline(events, now)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Total())
}

func TestAggregateWindowBoundariesInclusive(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	w := TimelineWindow(now)

	events := []Event{
		ev("first", 1, w.Start),                    // tepat di batas bawah
		ev("last", 1, w.End),                       // tepat di batas atas
		ev("before", 1, w.Start.Add(-time.Nanosecond)), // 1ns di luar
		ev("after", 1, w.End.Add(time.Nanosecond)),
	}

	m, err := AggregateTimeline(events, now)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Total(), "kedua ujung window inklusif, di luarnya tidak")

	// event batas bawah masuk bucket pertama, batas atas masuk bucket terakhir
	assert.Equal(t, 1, m.Count(m.Buckets[0], 1))
	assert.Equal(t, 1, m.Count(m.Buckets[len(m.Buckets)-1], 1))
}

func TestAggregateBoundaryEventOpensNewBucket(t *testing.T) {
	// event tepat di pergantian jam masuk ke jam baru, bukan jam sebelumnya
	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	boundary := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	m, err := AggregateTimeline([]Event{ev("x", 4, boundary)}, now)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Count(boundary, 4))
	assert.Equal(t, 0, m.Count(boundary.Add(-time.Hour), 4))
}

func TestHourlyBucketCount(t *testing.T) {
	// window 24 jam selalu menghasilkan 25 titik floor(start)..floor(end)
	exact := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	m, err := AggregateTimeline(nil, exact)
	require.NoError(t, err)
	assert.Len(t, m.Buckets, 25)

	mid := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	m2, err := AggregateTimeline(nil, mid)
	require.NoError(t, err)
	assert.Len(t, m2.Buckets, 25)

	// bucket terurut naik tanpa lubang
	for i := 1; i < len(m2.Buckets); i++ {
		assert.Equal(t, time.Hour, m2.Buckets[i].Sub(m2.Buckets[i-1]))
	}
}

func TestAggregateDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	events := make([]Event, 0, 50)
	for i := 0; i < 50; i++ {
		events = append(events, ev(
			fmt.Sprintf("e%d", i),
			(i%10)+1,
			now.Add(-time.Duration(i)*20*time.Minute),
		))
	}

	m1, err := AggregateTimeline(events, now)
	require.NoError(t, err)
	m2, err := AggregateTimeline(events, now)
	require.NoError(t, err)

	assert.Equal(t, m1.Buckets, m2.Buckets)
	for _, id := range constants.EmojiTypeIDs {
		assert.Equal(t, m1.Series(id), m2.Series(id))
	}
	assert.Equal(t, m1.Total(), m2.Total())
}

func TestFilterEventsSharedSemantics(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	w := TimelineWindow(now)

	events := []Event{
		ev("in", 5, now.Add(-time.Hour)),
		ev("legacy", 11, now.Add(-time.Hour)),
		ev("out", 5, w.Start.Add(-time.Minute)),
	}

	filtered := FilterEvents(events, w)
	require.Len(t, filtered, 1)
	assert.Equal(t, "in", filtered[0].ID)
}
