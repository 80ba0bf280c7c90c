// internals/features/users/user/controller/user_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"emojiku_backend/internals/features/users/user/dto"
	"emojiku_backend/internals/features/users/user/model"
	helper "emojiku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// kolom yang boleh dipakai sort di list user
var userSortWhitelist = map[string]string{
	"created_at": "created_at",
	"user_name":  "user_name",
	"email":      "email",
	"role":       "role",
}

/*
	=========================================================
	  LIST & DETAIL
	=========================================================
*/

// GET /api/a/users?role=&q=&page=&per_page=
func (ctrl *UserAdminController) ListUsers(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role != "" {
		q = q.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	order, err := p.SafeOrderClause(userSortWhitelist, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	var users []model.UserModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonList(c, "Daftar user", dto.FromModelList(users),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/users/:id
func (ctrl *UserAdminController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonOK(c, "Detail user", dto.FromModel(&user))
}

/*
	=========================================================
	  CREATE
	=========================================================
*/

// POST /api/a/users
func (ctrl *UserAdminController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if req.Role == "" {
		req.Role = "student"
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// Cek duplikat (email / username / phone)
	var count int64
	dup := ctrl.DB.Model(&model.UserModel{}).
		Where("email = ? OR user_name = ?", req.Email, req.UserName)
	if req.Phone != nil && *req.Phone != "" {
		dup = ctrl.DB.Model(&model.UserModel{}).
			Where("email = ? OR user_name = ? OR phone = ?", req.Email, req.UserName, *req.Phone)
	}
	if err := dup.Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi user")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username, email, atau nomor telepon sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	newUser := req.ToModel()
	newUser.Password = string(hashed)

	// Satu transaksi: insert gagal → tidak ada perubahan apa pun
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(newUser).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromModel(newUser))
}

/*
	=========================================================
	  UPDATE & DELETE
	=========================================================
*/

// PATCH /api/a/users/:id
func (ctrl *UserAdminController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	// Cek email/phone dipakai user lain
	if req.Email != nil {
		var n int64
		if err := ctrl.DB.Model(&model.UserModel{}).
			Where("email = ? AND id <> ?", *req.Email, id).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek email")
		}
		if n > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah dipakai user lain")
		}
	}
	if req.Phone != nil && *req.Phone != "" {
		var n int64
		if err := ctrl.DB.Model(&model.UserModel{}).
			Where("phone = ? AND id <> ?", *req.Phone, id).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek nomor telepon")
		}
		if n > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor telepon sudah dipakai user lain")
		}
	}

	req.ApplyToModel(&user)
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
		}
		user.Password = string(hashed)
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&user).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update user")
	}

	return helper.JsonUpdated(c, "User berhasil diupdate", dto.FromModel(&user))
}

// DELETE /api/a/users/:id (soft delete)
func (ctrl *UserAdminController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}
