// internals/features/courses/controller/enrollment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cDto "emojiku_backend/internals/features/courses/dto"
	cModel "emojiku_backend/internals/features/courses/model"
	uDto "emojiku_backend/internals/features/users/user/dto"
	uModel "emojiku_backend/internals/features/users/user/model"
	helper "emojiku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

/*
	=========================================================
	  ENROLL / UNENROLL (admin)
	=========================================================
*/

// POST /api/a/courses/:id/enrollments
func (ctrl *EnrollmentController) EnrollStudent(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	var req cDto.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// course harus ada
	var course cModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	// user harus ada & rolenya student
	var student uModel.UserModel
	if err := ctrl.DB.First(&student, "id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek student")
	}
	if !student.IsStudent() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "User tersebut bukan student")
	}

	enrollment := &cModel.CourseEnrollmentModel{
		EnrollmentStudentID: req.StudentID,
		EnrollmentCourseID:  courseID,
	}
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(enrollment).Error
	}); err != nil {
		// unique index uq_enrollment_student_course → duplikat
		if strings.Contains(err.Error(), "uq_enrollment_student_course") ||
			strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Student sudah terdaftar di course ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan student")
	}

	return helper.JsonCreated(c, "Student berhasil didaftarkan", enrollment)
}

// DELETE /api/a/courses/:id/enrollments/:student_id
func (ctrl *EnrollmentController) UnenrollStudent(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID student tidak valid")
	}

	res := ctrl.DB.
		Where("enrollment_course_id = ? AND enrollment_student_id = ?", courseID, studentID).
		Delete(&cModel.CourseEnrollmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan pendaftaran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pendaftaran berhasil dibatalkan", fiber.Map{
		"course_id":  courseID,
		"student_id": studentID,
	})
}

/*
	=========================================================
	  LIST PESERTA (admin & teacher pemilik course)
	=========================================================
*/

// GET /api/a/courses/:id/enrollments
func (ctrl *EnrollmentController) ListEnrolledStudents(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	p := helper.ParseFiber(c, "created_at", "asc", helper.DefaultOpts)

	base := ctrl.DB.Model(&uModel.UserModel{}).
		Joins("JOIN course_enrollments ce ON ce.enrollment_student_id = users.id").
		Where("ce.enrollment_course_id = ?", courseID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung peserta")
	}

	var rows []uModel.UserModel
	if err := base.Order("users.full_name ASC").
		Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil peserta")
	}

	return helper.JsonList(c, "Daftar peserta course", uDto.FromModelList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
