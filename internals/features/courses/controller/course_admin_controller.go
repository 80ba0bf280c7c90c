// internals/features/courses/controller/course_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cDto "emojiku_backend/internals/features/courses/dto"
	cModel "emojiku_backend/internals/features/courses/model"
	uModel "emojiku_backend/internals/features/users/user/model"
	helper "emojiku_backend/internals/helpers"
)

type CourseAdminController struct {
	DB *gorm.DB
}

func NewCourseAdminController(db *gorm.DB) *CourseAdminController {
	return &CourseAdminController{DB: db}
}

// whitelist kolom sorting course
var courseSortWhitelist = map[string]string{
	"created_at":  "created_at",
	"updated_at":  "updated_at",
	"course_name": "course_name",
}

/*
	=========================================================
	  LIST & DETAIL
	=========================================================
*/

// GET /api/a/courses
func (ctrl *CourseAdminController) ListCourses(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctrl.DB.Model(&cModel.CourseModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("course_name ILIKE ?", "%"+q+"%")
	}
	if teacherID := strings.TrimSpace(c.Query("teacher_id")); teacherID != "" {
		id, err := uuid.Parse(teacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		tx = tx.Where("course_teacher_id = ?", id)
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		tx = tx.Where("course_is_active = ?", active == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung course")
	}

	order, err := p.SafeOrderClause(courseSortWhitelist, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter sorting tidak valid")
	}

	var rows []cModel.CourseModel
	if err := tx.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar course")
	}

	return helper.JsonList(c, "Daftar course", cDto.FromModelList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/courses/:id
func (ctrl *CourseAdminController) GetCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	var course cModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	return helper.JsonOK(c, "Detail course", cDto.FromModel(&course))
}

/*
	=========================================================
	  CREATE / UPDATE / DELETE
	=========================================================
*/

// POST /api/a/courses
func (ctrl *CourseAdminController) CreateCourse(c *fiber.Ctx) error {
	var req cDto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if req.CourseTeacherID != nil {
		if err := ctrl.ensureTeacher(*req.CourseTeacherID); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
	}

	course := req.ToModel()
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(course).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat course")
	}

	return helper.JsonCreated(c, "Course berhasil dibuat", cDto.FromModel(course))
}

// PATCH /api/a/courses/:id
func (ctrl *CourseAdminController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	var req cDto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var course cModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	if req.CourseTeacherID != nil {
		if err := ctrl.ensureTeacher(*req.CourseTeacherID); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
	}

	req.ApplyToModel(&course)
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&course).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update course")
	}

	return helper.JsonUpdated(c, "Course berhasil diupdate", cDto.FromModel(&course))
}

// DELETE /api/a/courses/:id (soft delete)
func (ctrl *CourseAdminController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	res := ctrl.DB.Delete(&cModel.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Course berhasil dihapus", fiber.Map{"course_id": id})
}

/* =========================== util kecil =========================== */

// ensureTeacher: pastikan user ada & rolenya teacher (atau admin).
func (ctrl *CourseAdminController) ensureTeacher(teacherID uuid.UUID) error {
	var u uModel.UserModel
	if err := ctrl.DB.First(&u, "id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("Teacher tidak ditemukan")
		}
		return errors.New("Gagal cek teacher")
	}
	if !u.IsTeacher() && !u.IsAdmin() {
		return errors.New("User tersebut bukan teacher")
	}
	return nil
}
