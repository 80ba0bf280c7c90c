// internals/features/emojis/service/window.go
package service

import (
	"errors"
	"time"
)

/* =======================================================
   ERROR SENTINEL
   ======================================================= */

var (
	// ErrInvalidWindow: start > end, atau start di masa depan
	ErrInvalidWindow = errors.New("rentang waktu tidak valid")

	// ErrNoData: hasil agregasi kosong (bukan error fatal, downstream wajib cek)
	ErrNoData = errors.New("tidak ada data pada rentang ini")
)

/* =======================================================
   TIME WINDOW
   ======================================================= */

// TimeWindow adalah rentang waktu inklusif [Start, End] untuk agregasi.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Validate memastikan window layak dipakai.
// now dipass eksplisit supaya gampang dites (core tidak baca state global).
func (w TimeWindow) Validate(now time.Time) error {
	if w.Start.After(w.End) {
		return ErrInvalidWindow
	}
	if w.Start.After(now) {
		return ErrInvalidWindow
	}
	return nil
}

// Contains: cek timestamp masuk window (dua ujung inklusif).
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// NewDayRangeWindow membangun window dari dua tanggal kalender.
// End diperluas ke akhir hari (awal hari berikutnya minus 1 nanodetik)
// supaya event di tanggal terakhir tetap ikut terhitung.
func NewDayRangeWindow(start, end time.Time) TimeWindow {
	s := startOfDay(start)
	e := startOfDay(end).AddDate(0, 0, 1).Add(-time.Nanosecond)
	return TimeWindow{Start: s, End: e}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
