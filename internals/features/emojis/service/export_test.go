package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	rows := []ExportRow{
		{
			EmojiID:  "e2",
			CourseID: "c1",
			Type:     5,
			Label:    "neutral",
			SentAt:   time.Date(2025, 6, 2, 9, 15, 30, 0, time.UTC),
		},
		{
			EmojiID:  "e1",
			CourseID: "c1",
			Type:     2,
			Label:    "smile",
			SentAt:   time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		},
	}

	data, err := CSVBytes(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header + 2 baris data")

	assert.Equal(t,
		[]string{"emoji_id", "course_id", "emoji_type", "emoji_label", "sent_at"},
		records[0])
	assert.Equal(t,
		[]string{"e2", "c1", "5", "neutral", "2025-06-02 09:15:30"},
		records[1])
	assert.Equal(t,
		[]string{"e1", "c1", "2", "smile", "2025-06-01 08:00:00"},
		records[2])
}

func TestWriteCSVEmptyStillHasHeader(t *testing.T) {
	data, err := CSVBytes(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header tetap ditulis walau tanpa data")
	assert.Equal(t, "emoji_id", records[0][0])
}

func TestExportFilename(t *testing.T) {
	w := TimeWindow{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 7, 23, 59, 59, 0, time.UTC),
	}

	name := ExportFilename("emoji", "abc-123", w, "csv")
	assert.Equal(t, "emoji_abc-123_20250601_20250607.csv", name)
}

func TestExportFilenameNow(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 45, 0, time.UTC)
	name := ExportFilenameNow("timeline", "abc-123", now, "png")
	assert.Equal(t, "timeline_abc-123_20250615_103045.png", name)
}
