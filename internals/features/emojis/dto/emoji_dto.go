package dto

import (
	"time"

	"github.com/google/uuid"

	"emojiku_backend/internals/constants"
	eModel "emojiku_backend/internals/features/emojis/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type SendEmojiRequest struct {
	CourseID uuid.UUID  `json:"course_id" validate:"required"`
	Type     int        `json:"type" validate:"required,min=1,max=10"`
	SentAt   *time.Time `json:"sent_at,omitempty"` // kosong → server pakai now
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type EmojiResponse struct {
	EmojiID        uuid.UUID `json:"emoji_id"`
	EmojiStudentID uuid.UUID `json:"emoji_student_id"`
	EmojiCourseID  uuid.UUID `json:"emoji_course_id"`
	EmojiType      int       `json:"emoji_type"`
	EmojiLabel     string    `json:"emoji_label"`
	EmojiSentAt    time.Time `json:"emoji_sent_at"`
}

func FromModel(m *eModel.EmojiModel) *EmojiResponse {
	if m == nil {
		return nil
	}
	return &EmojiResponse{
		EmojiID:        m.EmojiID,
		EmojiStudentID: m.EmojiStudentID,
		EmojiCourseID:  m.EmojiCourseID,
		EmojiType:      m.EmojiType,
		EmojiLabel:     constants.EmojiTypeLabel(m.EmojiType),
		EmojiSentAt:    m.EmojiSentAt,
	}
}

func FromModelList(list []eModel.EmojiModel) []EmojiResponse {
	out := make([]EmojiResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
