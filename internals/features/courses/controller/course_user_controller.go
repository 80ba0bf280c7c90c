// internals/features/courses/controller/course_user_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cDto "emojiku_backend/internals/features/courses/dto"
	cModel "emojiku_backend/internals/features/courses/model"
	helper "emojiku_backend/internals/helpers"
)

// CourseUserController: endpoint course untuk user login (non-admin).
// Teacher lihat course miliknya, student lihat course yang dia ikuti.
type CourseUserController struct {
	DB *gorm.DB
}

func NewCourseUserController(db *gorm.DB) *CourseUserController {
	return &CourseUserController{DB: db}
}

// GET /api/u/courses/mine
func (ctrl *CourseUserController) MyCourses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := helper.GetRoleFromToken(c)

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var base *gorm.DB
	switch role {
	case "teacher", "admin":
		// teacher: course yang dia ampu
		base = ctrl.DB.Model(&cModel.CourseModel{}).
			Where("course_teacher_id = ?", userID)
	default:
		// student: course yang dia ikuti
		base = ctrl.DB.Model(&cModel.CourseModel{}).
			Joins("JOIN course_enrollments ce ON ce.enrollment_course_id = courses.course_id").
			Where("ce.enrollment_student_id = ?", userID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung course")
	}

	var rows []cModel.CourseModel
	if err := base.Order("courses.created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	return helper.JsonList(c, "Course Anda", cDto.FromModelList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
