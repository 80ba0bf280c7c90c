package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseEnrollmentModel: join table student ↔ course.
// Satu student hanya boleh terdaftar sekali per course (unique index).
type CourseEnrollmentModel struct {
	EnrollmentID        uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`
	EnrollmentStudentID uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course" json:"enrollment_student_id"`
	EnrollmentCourseID  uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course" json:"enrollment_course_id"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CourseEnrollmentModel) TableName() string {
	return "course_enrollments"
}
