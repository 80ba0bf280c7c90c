// internals/features/emojis/service/timeline.go
package service

import "time"

/* =======================================================
   TIMELINE 24 JAM (bucket per jam)
   ======================================================= */

// TimelineDuration: lebar window timeline, fix 24 jam ke belakang dari "now".
const TimelineDuration = 24 * time.Hour

// HourlyBucketing: bucket per jam untuk chart tren 24 jam.
//
// Enumerate memakai floor(start)..floor(end) inklusif; untuk window 24 jam
// hasilnya selalu 25 titik (jam parsial di kedua ujung ikut digambar).
// Pilihan ini konsisten dipakai untuk rendering maupun total.
type HourlyBucketing struct{}

func (HourlyBucketing) Enumerate(w TimeWindow) []time.Time {
	first := w.Start.Truncate(time.Hour)
	last := w.End.Truncate(time.Hour)

	buckets := make([]time.Time, 0, 25)
	for t := first; !t.After(last); t = t.Add(time.Hour) {
		buckets = append(buckets, t)
	}
	return buckets
}

// BucketOf: timestamp dipotong ke jam (menit/detik/nano → 0).
// Event tepat di pergantian jam masuk ke jam yang baru dibuka.
func (HourlyBucketing) BucketOf(t time.Time) time.Time {
	return t.Truncate(time.Hour)
}

// TimelineWindow: window timeline selalu [now-24h, now], bukan dari caller.
func TimelineWindow(now time.Time) TimeWindow {
	return TimeWindow{Start: now.Add(-TimelineDuration), End: now}
}

// AggregateTimeline: jalur pendek untuk chart tren 24 jam.
func AggregateTimeline(events []Event, now time.Time) (*AggregationMatrix, error) {
	return Aggregate(events, TimelineWindow(now), HourlyBucketing{})
}
