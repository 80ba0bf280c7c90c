// internals/features/emojis/repository/emoji_repository.go
package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eModel "emojiku_backend/internals/features/emojis/model"
	"emojiku_backend/internals/features/emojis/service"
)

var (
	ErrEmojiNotFound = errors.New("emoji tidak ditemukan")
	ErrNotOwner      = errors.New("emoji bukan milik Anda")
)

// EmojiRepository: akses tabel emojis. Query window dilakukan lebar di SQL
// (filter kasar), penyaringan final tipe 1..10 + inklusivitas tetap di
// service.FilterEvents supaya semantiknya satu pintu.
type EmojiRepository struct {
	DB *gorm.DB
}

func NewEmojiRepository(db *gorm.DB) *EmojiRepository {
	return &EmojiRepository{DB: db}
}

/* =======================================================
   WRITE PATH
   ======================================================= */

func (r *EmojiRepository) Insert(m *eModel.EmojiModel) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
}

// DeleteOwned menghapus emoji milik studentID. Bedakan 404 (tidak ada)
// dengan 403 (ada tapi punya orang lain) — caller butuh status berbeda.
func (r *EmojiRepository) DeleteOwned(emojiID, studentID uuid.UUID) error {
	var m eModel.EmojiModel
	if err := r.DB.First(&m, "emoji_id = ?", emojiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmojiNotFound
		}
		return err
	}
	if m.EmojiStudentID != studentID {
		return ErrNotOwner
	}
	return r.DB.Delete(&eModel.EmojiModel{}, "emoji_id = ?", emojiID).Error
}

/* =======================================================
   READ PATH (proyeksi ke service.Event)
   ======================================================= */

// QueryEvents mengambil event satu course di dalam window sebagai snapshot
// read-only untuk agregasi.
func (r *EmojiRepository) QueryEvents(courseID uuid.UUID, w service.TimeWindow) ([]service.Event, error) {
	var rows []eModel.EmojiModel
	if err := r.DB.
		Where("emoji_course_id = ? AND emoji_sent_at >= ? AND emoji_sent_at <= ?",
			courseID, w.Start, w.End).
		Order("emoji_sent_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEvents(rows), nil
}

// QueryRecentEvents: semua event course sejak "since" (jalur timeline).
func (r *EmojiRepository) QueryRecentEvents(courseID uuid.UUID, since time.Time) ([]service.Event, error) {
	var rows []eModel.EmojiModel
	if err := r.DB.
		Where("emoji_course_id = ? AND emoji_sent_at >= ?", courseID, since).
		Order("emoji_sent_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEvents(rows), nil
}

// HistoryByStudent: riwayat emoji milik satu student (terbaru dulu), paginated.
func (r *EmojiRepository) HistoryByStudent(studentID uuid.UUID, courseID *uuid.UUID, limit, offset int) ([]eModel.EmojiModel, int64, error) {
	base := r.DB.Model(&eModel.EmojiModel{}).
		Where("emoji_student_id = ? AND emoji_type BETWEEN 1 AND 10", studentID)
	if courseID != nil {
		base = base.Where("emoji_course_id = ?", *courseID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []eModel.EmojiModel
	if err := base.Order("emoji_sent_at DESC").
		Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func toEvents(rows []eModel.EmojiModel) []service.Event {
	out := make([]service.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, service.Event{
			ID:        m.EmojiID.String(),
			StudentID: m.EmojiStudentID.String(),
			CourseID:  m.EmojiCourseID.String(),
			Type:      m.EmojiType,
			SentAt:    m.EmojiSentAt,
		})
	}
	return out
}
