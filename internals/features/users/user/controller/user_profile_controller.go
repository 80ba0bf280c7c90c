// internals/features/users/user/controller/user_profile_controller.go
package controller

import (
	"errors"

	"emojiku_backend/internals/features/users/user/dto"
	"emojiku_backend/internals/features/users/user/model"
	helper "emojiku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Profil self-service: semua role boleh, tapi hanya data miliknya sendiri.
// ID dan role TIDAK pernah berubah lewat jalur ini.
type UserProfileController struct {
	DB *gorm.DB
}

func NewUserProfileController(db *gorm.DB) *UserProfileController {
	return &UserProfileController{DB: db}
}

// GET /api/u/profile
func (ctrl *UserProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.JsonOK(c, "Profil user", dto.FromModel(&user))
}

// PATCH /api/u/profile
func (ctrl *UserProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User belum login")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	// Email/phone tidak boleh nabrak user lain
	if req.Email != nil {
		var n int64
		if err := ctrl.DB.Model(&model.UserModel{}).
			Where("email = ? AND id <> ?", *req.Email, userID).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek email")
		}
		if n > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah dipakai user lain")
		}
		user.Email = *req.Email
	}
	if req.Phone != nil && *req.Phone != "" {
		var n int64
		if err := ctrl.DB.Model(&model.UserModel{}).
			Where("phone = ? AND id <> ?", *req.Phone, userID).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek nomor telepon")
		}
		if n > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor telepon sudah dipakai user lain")
		}
		user.Phone = req.Phone
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&user).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update profil")
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.FromModel(&user))
}
