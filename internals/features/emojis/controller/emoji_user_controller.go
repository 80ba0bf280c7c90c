// internals/features/emojis/controller/emoji_user_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cModel "emojiku_backend/internals/features/courses/model"
	eDto "emojiku_backend/internals/features/emojis/dto"
	eModel "emojiku_backend/internals/features/emojis/model"
	eRepo "emojiku_backend/internals/features/emojis/repository"
	helper "emojiku_backend/internals/helpers"
)

// EmojiUserController: jalur student — kirim, tarik kembali, dan riwayat emoji.
type EmojiUserController struct {
	DB   *gorm.DB
	Repo *eRepo.EmojiRepository
}

func NewEmojiUserController(db *gorm.DB) *EmojiUserController {
	return &EmojiUserController{DB: db, Repo: eRepo.NewEmojiRepository(db)}
}

/*
	=========================================================
	  SEND EMOJI
	=========================================================
*/

// POST /api/u/emojis
func (ctrl *EmojiUserController) SendEmoji(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req eDto.SendEmojiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	now := time.Now().UTC()
	sentAt := now
	if req.SentAt != nil {
		sentAt = req.SentAt.UTC()
		// timestamp masa depan ditolak, bukan di-clamp
		if sentAt.After(now) {
			return helper.JsonError(c, fiber.StatusBadRequest, "sent_at tidak boleh di masa depan")
		}
	}

	// course harus ada & aktif
	var course cModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}
	if !course.CourseIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Course sedang tidak aktif")
	}

	// hanya student yang terdaftar di course yang boleh kirim
	var enrolled int64
	if err := ctrl.DB.Model(&cModel.CourseEnrollmentModel{}).
		Where("enrollment_course_id = ? AND enrollment_student_id = ?", req.CourseID, studentID).
		Count(&enrolled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek pendaftaran")
	}
	if enrolled == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak terdaftar di course ini")
	}

	emoji := &eModel.EmojiModel{
		EmojiStudentID: studentID,
		EmojiCourseID:  req.CourseID,
		EmojiType:      req.Type,
		EmojiSentAt:    sentAt,
	}
	if err := ctrl.Repo.Insert(emoji); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan emoji")
	}

	return helper.JsonCreated(c, "Emoji terkirim", eDto.FromModel(emoji))
}

/*
	=========================================================
	  RECALL (hapus emoji milik sendiri)
	=========================================================
*/

// DELETE /api/u/emojis/:id
func (ctrl *EmojiUserController) RecallEmoji(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	emojiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID emoji tidak valid")
	}

	if err := ctrl.Repo.DeleteOwned(emojiID, studentID); err != nil {
		switch {
		case errors.Is(err, eRepo.ErrEmojiNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Emoji tidak ditemukan")
		case errors.Is(err, eRepo.ErrNotOwner):
			return helper.JsonError(c, fiber.StatusForbidden, "Emoji bukan milik Anda")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus emoji")
		}
	}

	return helper.JsonDeleted(c, "Emoji berhasil ditarik kembali", fiber.Map{"emoji_id": emojiID})
}

/*
	=========================================================
	  HISTORY (riwayat milik sendiri, terbaru dulu)
	=========================================================
*/

// GET /api/u/emojis/history
func (ctrl *EmojiUserController) History(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	p := helper.ParseFiber(c, "emoji_sent_at", "desc", helper.DefaultOpts)

	var courseID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
		}
		courseID = &id
	}

	rows, total, err := ctrl.Repo.HistoryByStudent(studentID, courseID, p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat emoji")
	}

	return helper.JsonList(c, "Riwayat emoji Anda", eDto.FromModelList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
