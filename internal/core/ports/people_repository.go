package ports

import (
	"context"
	"time"

	"github.com/edusuite/school-system/internal/core/domain"
)

// StudentFilter narrows student listings. Empty fields match everything.
type StudentFilter struct {
	ClassID      string
	SectionID    string
	SchoolYearID string
}

// StudentUpdate carries the fields a student update may change. Nil fields
// are left untouched. Enrollment keys (roll number, class, section, year)
// are changeable; the compound unique index guards roll-number collisions.
type StudentUpdate struct {
	Name             *string
	RollNo           *string
	ClassID          *string
	SectionID        *string
	SchoolYearID     *string
	Gender           *domain.Gender
	DOB              *time.Time
	BloodGroup       *domain.BloodGroup
	Religion         *string
	Email            *string
	Phone            *string
	Address          *string
	Photo            *string
	ParentID         *string
	GuardianName     *string
	GuardianPhone    *string
	GuardianRelation *string
}

// StudentRepository persists students. Insert and Update surface a compound
// (roll_no, class_id, school_year_id) index violation as
// domain.ErrRollNumberTaken.
type StudentRepository interface {
	Insert(ctx context.Context, student *domain.Student) error
	List(ctx context.Context, filter StudentFilter) ([]*domain.Student, error)
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Student, error)
	Update(ctx context.Context, id string, upd StudentUpdate) (*domain.Student, error)
	Count(ctx context.Context) (int64, error)
}

// TeacherRepository persists teacher profiles.
type TeacherRepository interface {
	Insert(ctx context.Context, teacher *domain.Teacher) error
	List(ctx context.Context) ([]*domain.Teacher, error)
	FindByID(ctx context.Context, id string) (*domain.Teacher, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Teacher, error)
	Count(ctx context.Context) (int64, error)
}

// ParentRepository persists parent profiles.
type ParentRepository interface {
	Insert(ctx context.Context, parent *domain.Parent) error
	List(ctx context.Context) ([]*domain.Parent, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Parent, error)
	Count(ctx context.Context) (int64, error)
}
