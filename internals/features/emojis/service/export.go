// internals/features/emojis/service/export.go
package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

/* =======================================================
   EXPORT CSV (baris mentah, bukan agregat)
   ======================================================= */

// csvHeader: header tetap, selalu ditulis walau tidak ada baris data.
var csvHeader = []string{"emoji_id", "course_id", "emoji_type", "emoji_label", "sent_at"}

// timestamp di CSV presisi detik
const csvTimeLayout = "2006-01-02 15:04:05"

// WriteCSV menulis header + satu baris per event ke w.
func WriteCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("tulis header csv gagal: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.EmojiID,
			r.CourseID,
			strconv.Itoa(r.Type),
			r.Label,
			r.SentAt.Format(csvTimeLayout),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("tulis baris csv gagal: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVBytes: versi buffer dari WriteCSV.
func CSVBytes(rows []ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* =======================================================
   NAMA FILE DOWNLOAD
   ======================================================= */

// ExportFilename: {kind}_{course_id}_{rentang-atau-timestamp}.{ext}.
// Cukup unik untuk konteks download browser; keunikan keras tidak dijamin.
func ExportFilename(kind, courseID string, w TimeWindow, ext string) string {
	rangePart := fmt.Sprintf("%s_%s",
		w.Start.Format("20060102"),
		w.End.Format("20060102"),
	)
	return fmt.Sprintf("%s_%s_%s.%s", kind, courseID, rangePart, ext)
}

// ExportFilenameNow: varian untuk export timeline (window implisit 24 jam).
func ExportFilenameNow(kind, courseID string, now time.Time, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", kind, courseID, now.Format("20060102_150405"), ext)
}
