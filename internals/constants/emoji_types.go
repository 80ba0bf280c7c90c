package constants

import "fmt"

/* =======================================================
   TABEL TIPE EMOJI (statis, immutable selama proses hidup)
   ======================================================= */

const (
	EmojiTypeMin = 1
	EmojiTypeMax = 10
)

// EmojiTypeMap: id tipe → label tampilan.
// Tipe di luar 1..10 boleh ada di storage (data legacy) tapi
// TIDAK pernah ikut statistik maupun chart.
var EmojiTypeMap = map[int]string{
	1:  "thinking",
	2:  "smile",
	3:  "relaxed",
	4:  "smile_with_heart_eyes",
	5:  "neutral",
	6:  "sad",
	7:  "confused",
	8:  "painful",
	9:  "speechless",
	10: "angry",
}

// EmojiTypeIDs: urutan kategori yang baku untuk semua agregasi & chart.
// Jangan iterasi map langsung — urutan map tidak deterministik.
var EmojiTypeIDs = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// IsKnownEmojiType: true hanya untuk tipe 1..10.
func IsKnownEmojiType(id int) bool {
	return id >= EmojiTypeMin && id <= EmojiTypeMax
}

// EmojiTypeLabel mengembalikan label tipe, dengan fallback "unknown (id)"
// kalau id tidak ada di tabel.
func EmojiTypeLabel(id int) string {
	if label, ok := EmojiTypeMap[id]; ok {
		return label
	}
	return fmt.Sprintf("unknown (%d)", id)
}
