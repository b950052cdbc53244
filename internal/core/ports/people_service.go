package ports

import (
	"context"
	"time"

	"github.com/edusuite/school-system/internal/core/domain"
)

// CreateTeacherInput carries the fields for a new teacher profile.
type CreateTeacherInput struct {
	UserID        string
	Name          string
	Designation   string
	Qualification string
	Subjects      []string
	Classes       []string
	Gender        domain.Gender
	DOB           *time.Time
	JoiningDate   *time.Time
	Phone         string
	Email         string
	Address       string
	Photo         string
	Salary        float64
}

// CreateStudentInput carries the fields for a new student record.
type CreateStudentInput struct {
	UserID           string
	Name             string
	RollNo           string
	ClassID          string
	SectionID        string
	SchoolYearID     string
	Gender           domain.Gender
	DOB              *time.Time
	BloodGroup       domain.BloodGroup
	Religion         string
	Email            string
	Phone            string
	Address          string
	Photo            string
	ParentID         string
	AdmissionDate    *time.Time
	GuardianName     string
	GuardianPhone    string
	GuardianRelation string
}

// CreateParentInput carries the fields for a new parent profile.
type CreateParentInput struct {
	UserID     string
	Name       string
	Phone      string
	Email      string
	Address    string
	Occupation string
	StudentIDs []string
}

// PeopleService manages teacher, student and parent records.
type PeopleService interface {
	CreateTeacher(ctx context.Context, actor *domain.User, in CreateTeacherInput) (*domain.Teacher, error)
	ListTeachers(ctx context.Context) ([]*domain.Teacher, error)
	GetTeacher(ctx context.Context, id string) (*domain.Teacher, error)

	CreateStudent(ctx context.Context, actor *domain.User, in CreateStudentInput) (*domain.Student, error)
	ListStudents(ctx context.Context, filter StudentFilter) ([]*domain.Student, error)
	GetStudent(ctx context.Context, id string) (*domain.Student, error)
	UpdateStudent(ctx context.Context, actor *domain.User, id string, upd StudentUpdate) (*domain.Student, error)

	CreateParent(ctx context.Context, actor *domain.User, in CreateParentInput) (*domain.Parent, error)
	ListParents(ctx context.Context) ([]*domain.Parent, error)
}
