package ports

import (
	"context"

	"github.com/edusuite/school-system/internal/core/domain"
)

// SchoolYearRepository persists academic years. ClearCurrent unsets the
// is_current flag on every document; CreateSchoolYear uses it to keep at
// most one current year.
type SchoolYearRepository interface {
	Insert(ctx context.Context, year *domain.SchoolYear) error
	List(ctx context.Context) ([]*domain.SchoolYear, error)
	FindCurrent(ctx context.Context) (*domain.SchoolYear, error)
	ClearCurrent(ctx context.Context) error
}

// SectionRepository persists class sections.
type SectionRepository interface {
	Insert(ctx context.Context, section *domain.Section) error
	List(ctx context.Context) ([]*domain.Section, error)
}

// ClassRepository persists classes. List is sorted ascending by the numeric
// grade and optionally filtered by school year.
type ClassRepository interface {
	Insert(ctx context.Context, class *domain.Class) error
	List(ctx context.Context, schoolYearID string) ([]*domain.Class, error)
	FindByID(ctx context.Context, id string) (*domain.Class, error)
	Count(ctx context.Context) (int64, error)
}

// SubjectRepository persists subjects, optionally filtered by class.
type SubjectRepository interface {
	Insert(ctx context.Context, subject *domain.Subject) error
	List(ctx context.Context, classID string) ([]*domain.Subject, error)
	Count(ctx context.Context) (int64, error)
}
