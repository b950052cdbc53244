package handler

import "time"

type createSchoolYearRequest struct {
	Year      string    `json:"year"       validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date"   validate:"required"`
	IsCurrent bool      `json:"is_current"`
}

type createSectionRequest struct {
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity"`
}

type createClassRequest struct {
	Name         string   `json:"name"           validate:"required"`
	Numeric      int      `json:"numeric"        validate:"required,gt=0"`
	TeacherID    string   `json:"teacher_id"`
	SchoolYearID string   `json:"school_year_id" validate:"required"`
	Sections     []string `json:"sections"`
}

type createSubjectRequest struct {
	Name      string `json:"name"     validate:"required"`
	Code      string `json:"code"     validate:"required"`
	ClassID   string `json:"class_id" validate:"required"`
	TeacherID string `json:"teacher_id"`
	Type      string `json:"type"     validate:"omitempty,oneof=mandatory optional"`
}
