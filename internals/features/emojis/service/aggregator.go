// internals/features/emojis/service/aggregator.go
package service

import (
	"time"

	"emojiku_backend/internals/constants"
)

/* =======================================================
   EVENT (snapshot read-only hasil query, bukan model GORM)
   ======================================================= */

type Event struct {
	ID        string
	StudentID string
	CourseID  string
	Type      int
	SentAt    time.Time
}

/* =======================================================
   BUCKETING STRATEGY
   ======================================================= */

// BucketingStrategy menentukan cara window dipecah jadi bucket
// dan ke bucket mana sebuah timestamp jatuh.
type BucketingStrategy interface {
	// Enumerate menghasilkan key bucket terurut naik, tanpa lubang,
	// yang menutupi seluruh window.
	Enumerate(w TimeWindow) []time.Time

	// BucketOf memetakan timestamp ke key bucket miliknya.
	// Event tepat di batas bucket masuk ke bucket yang dibukanya,
	// bukan bucket sebelumnya.
	BucketOf(t time.Time) time.Time
}

/* =======================================================
   AGGREGATION MATRIX
   ======================================================= */

// AggregationMatrix: tabel padat (bucket × kategori 1..10) → count.
// Setiap kategori selalu hadir di setiap bucket walau count 0.
type AggregationMatrix struct {
	Buckets []time.Time // terurut naik

	rowIdx map[int64]int // unixnano key bucket → index baris
	cells  [][]int       // [baris][kolom], kolom = tipe-1
}

func newAggregationMatrix(buckets []time.Time) *AggregationMatrix {
	m := &AggregationMatrix{
		Buckets: buckets,
		rowIdx:  make(map[int64]int, len(buckets)),
		cells:   make([][]int, len(buckets)),
	}
	for i, b := range buckets {
		m.rowIdx[b.UnixNano()] = i
		m.cells[i] = make([]int, constants.EmojiTypeMax)
	}
	return m
}

// Count mengembalikan isi satu sel. Bucket/tipe di luar matrix → 0.
func (m *AggregationMatrix) Count(bucket time.Time, emojiType int) int {
	i, ok := m.rowIdx[bucket.UnixNano()]
	if !ok || !constants.IsKnownEmojiType(emojiType) {
		return 0
	}
	return m.cells[i][emojiType-1]
}

// Series mengembalikan deret count satu kategori mengikuti urutan bucket.
func (m *AggregationMatrix) Series(emojiType int) []int {
	out := make([]int, len(m.Buckets))
	if !constants.IsKnownEmojiType(emojiType) {
		return out
	}
	for i := range m.cells {
		out[i] = m.cells[i][emojiType-1]
	}
	return out
}

// CategoryTotals: total per kategori lintas semua bucket.
// Index slice = tipe-1, panjang selalu 10.
func (m *AggregationMatrix) CategoryTotals() []int {
	totals := make([]int, constants.EmojiTypeMax)
	for _, row := range m.cells {
		for j, n := range row {
			totals[j] += n
		}
	}
	return totals
}

// Total: jumlah seluruh sel.
func (m *AggregationMatrix) Total() int {
	sum := 0
	for _, row := range m.cells {
		for _, n := range row {
			sum += n
		}
	}
	return sum
}

func (m *AggregationMatrix) increment(bucket time.Time, emojiType int) {
	if i, ok := m.rowIdx[bucket.UnixNano()]; ok {
		m.cells[i][emojiType-1]++
	}
}

/* =======================================================
   AGGREGATE (inti bersama timeline / bar / pie / CSV)
   ======================================================= */

// Aggregate membucket-kan event ke matrix padat zero-filled.
//   - event dengan tipe di luar 1..10 atau di luar window di-drop diam-diam
//   - input kosong / tersaring habis → matrix full nol, bukan error
//   - deterministik: bucket & kategori selalu dienumerasi dalam urutan tetap
func Aggregate(events []Event, w TimeWindow, strategy BucketingStrategy) (*AggregationMatrix, error) {
	if w.Start.After(w.End) {
		return nil, ErrInvalidWindow
	}

	m := newAggregationMatrix(strategy.Enumerate(w))
	for _, ev := range FilterEvents(events, w) {
		m.increment(strategy.BucketOf(ev.SentAt), ev.Type)
	}
	return m, nil
}

// FilterEvents menyaring event ke tipe 1..10 di dalam window (dua ujung inklusif).
// Dipakai Aggregate dan proyeksi raw-row CSV supaya filternya identik.
func FilterEvents(events []Event, w TimeWindow) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if !constants.IsKnownEmojiType(ev.Type) {
			continue
		}
		if !w.Contains(ev.SentAt) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
