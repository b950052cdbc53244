package ports

import (
	"context"
	"time"

	"github.com/edusuite/school-system/internal/core/domain"
)

// CreateSchoolYearInput carries the fields for a new academic year.
type CreateSchoolYearInput struct {
	Year      string
	StartDate time.Time
	EndDate   time.Time
	IsCurrent bool
}

// CreateSectionInput carries the fields for a new section.
type CreateSectionInput struct {
	Name     string
	Capacity int
}

// CreateClassInput carries the fields for a new class.
type CreateClassInput struct {
	Name         string
	Numeric      int
	TeacherID    string
	SchoolYearID string
	Sections     []string
}

// CreateSubjectInput carries the fields for a new subject. Type defaults to
// mandatory when empty.
type CreateSubjectInput struct {
	Name      string
	Code      string
	ClassID   string
	TeacherID string
	Type      domain.SubjectType
}

// AcademicService manages school years, sections, classes and subjects.
// The actor on mutating calls is the authenticated identity, used for audit
// attribution.
type AcademicService interface {
	CreateSchoolYear(ctx context.Context, actor *domain.User, in CreateSchoolYearInput) (*domain.SchoolYear, error)
	ListSchoolYears(ctx context.Context) ([]*domain.SchoolYear, error)
	CurrentSchoolYear(ctx context.Context) (*domain.SchoolYear, error)

	CreateSection(ctx context.Context, actor *domain.User, in CreateSectionInput) (*domain.Section, error)
	ListSections(ctx context.Context) ([]*domain.Section, error)

	CreateClass(ctx context.Context, actor *domain.User, in CreateClassInput) (*domain.Class, error)
	ListClasses(ctx context.Context, schoolYearID string) ([]*domain.Class, error)
	GetClass(ctx context.Context, id string) (*domain.Class, error)

	CreateSubject(ctx context.Context, actor *domain.User, in CreateSubjectInput) (*domain.Subject, error)
	ListSubjects(ctx context.Context, classID string) ([]*domain.Subject, error)
}
