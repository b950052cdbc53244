package ports

import (
	"context"

	"github.com/edusuite/school-system/internal/core/domain"
)

// DashboardStats is the role-scoped dashboard payload. Only the fields
// relevant to the caller's role are populated; the rest are omitted from the
// JSON encoding.
type DashboardStats struct {
	// admin
	TotalStudents *int64 `json:"total_students,omitempty"`
	TotalTeachers *int64 `json:"total_teachers,omitempty"`
	TotalParents  *int64 `json:"total_parents,omitempty"`
	TotalClasses  *int64 `json:"total_classes,omitempty"`
	TotalSubjects *int64 `json:"total_subjects,omitempty"`
	// teacher
	MyClasses  *int `json:"my_classes,omitempty"`
	MySubjects *int `json:"my_subjects,omitempty"`
	// student
	MyClass   string `json:"my_class,omitempty"`
	MySection string `json:"my_section,omitempty"`
	// parent
	MyChildren *int `json:"my_children,omitempty"`
}

// DashboardService computes the stats payload for the given identity.
type DashboardService interface {
	Stats(ctx context.Context, actor *domain.User) (*DashboardStats, error)
}
