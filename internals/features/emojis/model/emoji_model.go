package model

import (
	"time"

	"github.com/google/uuid"
)

// EmojiModel merepresentasikan tabel emojis: satu baris = satu kiriman emoji
// dari student ke course. Kolom emoji_type sengaja TIDAK dibatasi check
// constraint 1..10 di DB — data lama bisa punya tipe di luar range, dan
// penyaringan dilakukan di layer agregasi, bukan di storage.
type EmojiModel struct {
	EmojiID        uuid.UUID `gorm:"column:emoji_id;type:uuid;default:gen_random_uuid();primaryKey" json:"emoji_id"`
	EmojiStudentID uuid.UUID `gorm:"column:emoji_student_id;type:uuid;not null;index:idx_emoji_student" json:"emoji_student_id"`
	EmojiCourseID  uuid.UUID `gorm:"column:emoji_course_id;type:uuid;not null;index:idx_emoji_course_sent,priority:1" json:"emoji_course_id"`
	EmojiType      int       `gorm:"column:emoji_type;not null" json:"emoji_type"`
	EmojiSentAt    time.Time `gorm:"column:emoji_sent_at;not null;index:idx_emoji_course_sent,priority:2" json:"emoji_sent_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (EmojiModel) TableName() string {
	return "emojis"
}
