package dto

import (
	"strings"
	"time"

	cModel "emojiku_backend/internals/features/courses/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateCourseRequest struct {
	CourseName        string         `json:"course_name" validate:"required,min=2,max=100"`
	CourseDescription *string        `json:"course_description,omitempty"`
	CourseTeacherID   *uuid.UUID     `json:"course_teacher_id,omitempty"`
	CourseTags        []string       `json:"course_tags,omitempty"`
	CourseMeta        datatypes.JSON `json:"course_meta,omitempty"`
}

func (r *CreateCourseRequest) Normalize() {
	r.CourseName = strings.TrimSpace(r.CourseName)
	if r.CourseDescription != nil {
		v := strings.TrimSpace(*r.CourseDescription)
		r.CourseDescription = &v
	}
	tags := make([]string, 0, len(r.CourseTags))
	for _, t := range r.CourseTags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	r.CourseTags = tags
}

func (r *CreateCourseRequest) ToModel() *cModel.CourseModel {
	return &cModel.CourseModel{
		CourseName:        r.CourseName,
		CourseDescription: r.CourseDescription,
		CourseTeacherID:   r.CourseTeacherID,
		CourseTags:        pq.StringArray(r.CourseTags),
		CourseMeta:        r.CourseMeta,
		CourseIsActive:    true,
	}
}

type UpdateCourseRequest struct {
	CourseName        *string         `json:"course_name,omitempty" validate:"omitempty,min=2,max=100"`
	CourseDescription *string         `json:"course_description,omitempty"`
	CourseTeacherID   *uuid.UUID      `json:"course_teacher_id,omitempty"`
	CourseTags        *[]string       `json:"course_tags,omitempty"`
	CourseMeta        *datatypes.JSON `json:"course_meta,omitempty"`
	CourseIsActive    *bool           `json:"course_is_active,omitempty"`
}

func (r *UpdateCourseRequest) ApplyToModel(m *cModel.CourseModel) {
	if r.CourseName != nil {
		m.CourseName = strings.TrimSpace(*r.CourseName)
	}
	if r.CourseDescription != nil {
		m.CourseDescription = r.CourseDescription
	}
	if r.CourseTeacherID != nil {
		m.CourseTeacherID = r.CourseTeacherID
	}
	if r.CourseTags != nil {
		m.CourseTags = pq.StringArray(*r.CourseTags)
	}
	if r.CourseMeta != nil {
		m.CourseMeta = *r.CourseMeta
	}
	if r.CourseIsActive != nil {
		m.CourseIsActive = *r.CourseIsActive
	}
}

type EnrollStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type CourseResponse struct {
	CourseID          uuid.UUID      `json:"course_id"`
	CourseName        string         `json:"course_name"`
	CourseDescription *string        `json:"course_description,omitempty"`
	CourseTeacherID   *uuid.UUID     `json:"course_teacher_id,omitempty"`
	CourseTags        []string       `json:"course_tags,omitempty"`
	CourseMeta        datatypes.JSON `json:"course_meta,omitempty"`
	CourseIsActive    bool           `json:"course_is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func FromModel(m *cModel.CourseModel) *CourseResponse {
	if m == nil {
		return nil
	}
	return &CourseResponse{
		CourseID:          m.CourseID,
		CourseName:        m.CourseName,
		CourseDescription: m.CourseDescription,
		CourseTeacherID:   m.CourseTeacherID,
		CourseTags:        []string(m.CourseTags),
		CourseMeta:        m.CourseMeta,
		CourseIsActive:    m.CourseIsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func FromModelList(list []cModel.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
