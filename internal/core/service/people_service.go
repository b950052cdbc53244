package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

// PeopleService manages teacher, student and parent records.
type PeopleService struct {
	teachers ports.TeacherRepository
	students ports.StudentRepository
	parents  ports.ParentRepository
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewPeopleService(
	teachers ports.TeacherRepository,
	students ports.StudentRepository,
	parents ports.ParentRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *PeopleService {
	return &PeopleService{
		teachers: teachers,
		students: students,
		parents:  parents,
		audit:    audit,
		log:      log,
	}
}

func (s *PeopleService) CreateTeacher(ctx context.Context, actor *domain.User, in ports.CreateTeacherInput) (*domain.Teacher, error) {
	now := time.Now().UTC()
	teacher := &domain.Teacher{
		ID:            uuid.NewString(),
		UserID:        in.UserID,
		Name:          in.Name,
		Designation:   in.Designation,
		Qualification: in.Qualification,
		Subjects:      emptyIfNil(in.Subjects),
		Classes:       emptyIfNil(in.Classes),
		Gender:        in.Gender,
		DOB:           in.DOB,
		JoiningDate:   in.JoiningDate,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		Photo:         in.Photo,
		Salary:        in.Salary,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.teachers.Insert(ctx, teacher); err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(actor, "teacher.create", "teacher", teacher.ID))
	s.log.Info().Str("teacher", teacher.Name).Msg("teacher created")
	return teacher, nil
}

func (s *PeopleService) ListTeachers(ctx context.Context) ([]*domain.Teacher, error) {
	return s.teachers.List(ctx)
}

func (s *PeopleService) GetTeacher(ctx context.Context, id string) (*domain.Teacher, error) {
	return s.teachers.FindByID(ctx, id)
}

// CreateStudent inserts a new student. Roll-number uniqueness within the
// (class, school year) pair rides on the compound unique index; the
// repository reports a collision as domain.ErrRollNumberTaken.
func (s *PeopleService) CreateStudent(ctx context.Context, actor *domain.User, in ports.CreateStudentInput) (*domain.Student, error) {
	now := time.Now().UTC()
	student := &domain.Student{
		ID:               uuid.NewString(),
		UserID:           in.UserID,
		Name:             in.Name,
		RollNo:           in.RollNo,
		ClassID:          in.ClassID,
		SectionID:        in.SectionID,
		SchoolYearID:     in.SchoolYearID,
		Gender:           in.Gender,
		DOB:              in.DOB,
		BloodGroup:       in.BloodGroup,
		Religion:         in.Religion,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		Photo:            in.Photo,
		ParentID:         in.ParentID,
		AdmissionDate:    in.AdmissionDate,
		GuardianName:     in.GuardianName,
		GuardianPhone:    in.GuardianPhone,
		GuardianRelation: in.GuardianRelation,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.students.Insert(ctx, student); err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(actor, "student.create", "student", student.ID))
	s.log.Info().Str("student", student.Name).Str("roll_no", student.RollNo).Msg("student created")
	return student, nil
}

func (s *PeopleService) ListStudents(ctx context.Context, filter ports.StudentFilter) ([]*domain.Student, error) {
	return s.students.List(ctx, filter)
}

func (s *PeopleService) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	return s.students.FindByID(ctx, id)
}

func (s *PeopleService) UpdateStudent(ctx context.Context, actor *domain.User, id string, upd ports.StudentUpdate) (*domain.Student, error) {
	student, err := s.students.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(actor, "student.update", "student", id))
	return student, nil
}

func (s *PeopleService) CreateParent(ctx context.Context, actor *domain.User, in ports.CreateParentInput) (*domain.Parent, error) {
	parent := &domain.Parent{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		Name:       in.Name,
		Phone:      in.Phone,
		Email:      in.Email,
		Address:    in.Address,
		Occupation: in.Occupation,
		StudentIDs: emptyIfNil(in.StudentIDs),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.parents.Insert(ctx, parent); err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(actor, "parent.create", "parent", parent.ID))
	return parent, nil
}

func (s *PeopleService) ListParents(ctx context.Context) ([]*domain.Parent, error) {
	return s.parents.List(ctx)
}

// emptyIfNil keeps list fields JSON-encoding as [] instead of null.
func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
