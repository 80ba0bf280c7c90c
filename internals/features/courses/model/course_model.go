package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseModel merepresentasikan tabel courses.
type CourseModel struct {
	CourseID          uuid.UUID      `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseName        string         `gorm:"column:course_name;size:100;not null" json:"course_name" validate:"required,min=2,max=100"`
	CourseDescription *string        `gorm:"column:course_description" json:"course_description,omitempty"`
	CourseTeacherID   *uuid.UUID     `gorm:"column:course_teacher_id;type:uuid;index" json:"course_teacher_id,omitempty"`
	CourseTags        pq.StringArray `gorm:"column:course_tags;type:text[]" json:"course_tags,omitempty"`
	CourseMeta        datatypes.JSON `gorm:"column:course_meta" json:"course_meta,omitempty"` // jadwal, ruangan, dsb (bebas)
	CourseIsActive    bool           `gorm:"column:course_is_active;not null;default:true" json:"course_is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CourseModel) TableName() string {
	return "courses"
}
