// internals/features/emojis/service/range_summary.go
package service

import (
	"sort"
	"time"

	"emojiku_backend/internals/constants"
)

/* =======================================================
   RANGE SUMMARY (satu bucket = seluruh window)
   Dipakai bar chart, pie chart, dan export CSV.
   ======================================================= */

// PieSkipZero: kategori dengan count 0 TIDAK digambar di pie chart
// (bar chart tetap menampilkan semua 10 kategori termasuk yang nol).
// Konstanta terdokumentasi, jangan diubah diam-diam — ada test yang menjaga.
const PieSkipZero = true

// RangeBucketing: strategi satu bucket; key bucket = start window.
type RangeBucketing struct {
	Window TimeWindow
}

func (b RangeBucketing) Enumerate(w TimeWindow) []time.Time {
	return []time.Time{w.Start}
}

func (b RangeBucketing) BucketOf(t time.Time) time.Time {
	return b.Window.Start
}

/* =======================================================
   HASIL RINGKASAN
   ======================================================= */

type CategoryCount struct {
	Type  int    `json:"type"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type PieSlice struct {
	Type    int     `json:"type"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// RangeSummary memegang matrix satu-bucket plus event tersaring
// (masih dibutuhkan untuk proyeksi raw-row CSV).
type RangeSummary struct {
	Window   TimeWindow
	Matrix   *AggregationMatrix
	filtered []Event
}

// SummarizeRange mengagregasi seluruh window jadi satu bucket.
func SummarizeRange(events []Event, w TimeWindow) (*RangeSummary, error) {
	m, err := Aggregate(events, w, RangeBucketing{Window: w})
	if err != nil {
		return nil, err
	}
	return &RangeSummary{
		Window:   w,
		Matrix:   m,
		filtered: FilterEvents(events, w),
	}, nil
}

// Total: jumlah seluruh event yang masuk hitungan.
func (s *RangeSummary) Total() int { return s.Matrix.Total() }

// BarData: count per kategori, urutan tetap 1..10, kategori nol tetap ikut.
func (s *RangeSummary) BarData() []CategoryCount {
	totals := s.Matrix.CategoryTotals()
	out := make([]CategoryCount, 0, constants.EmojiTypeMax)
	for _, id := range constants.EmojiTypeIDs {
		out = append(out, CategoryCount{
			Type:  id,
			Label: constants.EmojiTypeLabel(id),
			Count: totals[id-1],
		})
	}
	return out
}

// PieData: persentase per kategori terhadap total non-nol.
// Total dihitung SEKALI dan dipakai semua kategori supaya pembulatan
// tidak melenceng antar slice. Semua nol → ErrNoData (rendering di-skip).
func (s *RangeSummary) PieData() ([]PieSlice, error) {
	totals := s.Matrix.CategoryTotals()
	grand := 0
	for _, n := range totals {
		grand += n
	}
	if grand == 0 {
		return nil, ErrNoData
	}

	out := make([]PieSlice, 0, constants.EmojiTypeMax)
	for _, id := range constants.EmojiTypeIDs {
		n := totals[id-1]
		if n == 0 && PieSkipZero {
			continue
		}
		out = append(out, PieSlice{
			Type:    id,
			Label:   constants.EmojiTypeLabel(id),
			Count:   n,
			Percent: float64(n) / float64(grand) * 100,
		})
	}
	return out, nil
}

/* =======================================================
   PROYEKSI RAW-ROW (untuk CSV)
   ======================================================= */

// ExportRow: satu event mentah (tanpa agregasi) siap ditulis ke CSV.
type ExportRow struct {
	EmojiID  string
	CourseID string
	Type     int
	Label    string
	SentAt   time.Time
}

// Rows: semua event tersaring, terurut sent_at menurun (terbaru dulu).
func (s *RangeSummary) Rows() []ExportRow {
	events := make([]Event, len(s.filtered))
	copy(events, s.filtered)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].SentAt.After(events[j].SentAt)
	})

	rows := make([]ExportRow, 0, len(events))
	for _, ev := range events {
		rows = append(rows, ExportRow{
			EmojiID:  ev.ID,
			CourseID: ev.CourseID,
			Type:     ev.Type,
			Label:    constants.EmojiTypeLabel(ev.Type),
			SentAt:   ev.SentAt,
		})
	}
	return rows
}
