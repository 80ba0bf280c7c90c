// internals/route/details/course_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "emojiku_backend/internals/features/courses/controller"
)

// CourseAdminRoutes: kelola course + pendaftaran student, khusus admin.
func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	courseCtrl := courseController.NewCourseAdminController(db)
	enrollCtrl := courseController.NewEnrollmentController(db)

	grp := admin.Group("/courses")
	grp.Get("/", courseCtrl.ListCourses)
	grp.Get("/:id", courseCtrl.GetCourse)
	grp.Post("/", courseCtrl.CreateCourse)
	grp.Patch("/:id", courseCtrl.UpdateCourse)
	grp.Delete("/:id", courseCtrl.DeleteCourse)

	grp.Get("/:id/enrollments", enrollCtrl.ListEnrolledStudents)
	grp.Post("/:id/enrollments", enrollCtrl.EnrollStudent)
	grp.Delete("/:id/enrollments/:student_id", enrollCtrl.UnenrollStudent)
}

// CourseUserRoutes: course milik user login (teacher: diampu, student: diikuti).
func CourseUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseUserController(db)

	grp := user.Group("/courses")
	grp.Get("/mine", ctrl.MyCourses)
}
