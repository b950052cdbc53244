package domain

import "time"

// SchoolYear is an academic year such as "2024-2025". At most one year is
// flagged current at any time; setting a new current year unsets the rest.
type SchoolYear struct {
	ID        string    `json:"id" bson:"_id"`
	Year      string    `json:"year" bson:"year"`
	StartDate time.Time `json:"start_date" bson:"start_date"`
	EndDate   time.Time `json:"end_date" bson:"end_date"`
	IsCurrent bool      `json:"is_current" bson:"is_current"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Section is a named division within a class, e.g. "A", "B".
type Section struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Capacity  int       `json:"capacity,omitempty" bson:"capacity,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Class is a grade level within a school year. Numeric (1-12) is the sort
// key for listings.
type Class struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Numeric      int       `json:"numeric" bson:"numeric"`
	TeacherID    string    `json:"teacher_id,omitempty" bson:"teacher_id,omitempty"`
	SchoolYearID string    `json:"school_year_id" bson:"school_year_id"`
	Sections     []string  `json:"sections" bson:"sections"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// SubjectType distinguishes mandatory from optional subjects.
type SubjectType string

const (
	SubjectMandatory SubjectType = "mandatory"
	SubjectOptional  SubjectType = "optional"
)

// Subject is a course taught in a class.
type Subject struct {
	ID        string      `json:"id" bson:"_id"`
	Name      string      `json:"name" bson:"name"`
	Code      string      `json:"code" bson:"code"`
	ClassID   string      `json:"class_id" bson:"class_id"`
	TeacherID string      `json:"teacher_id,omitempty" bson:"teacher_id,omitempty"`
	Type      SubjectType `json:"type" bson:"type"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}
