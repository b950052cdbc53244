package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

// AcademicService manages school years, sections, classes and subjects.
type AcademicService struct {
	years    ports.SchoolYearRepository
	sections ports.SectionRepository
	classes  ports.ClassRepository
	subjects ports.SubjectRepository
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAcademicService(
	years ports.SchoolYearRepository,
	sections ports.SectionRepository,
	classes ports.ClassRepository,
	subjects ports.SubjectRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AcademicService {
	return &AcademicService{
		years:    years,
		sections: sections,
		classes:  classes,
		subjects: subjects,
		audit:    audit,
		log:      log,
	}
}

// CreateSchoolYear inserts a new academic year. When the new year is flagged
// current, every other year's flag is cleared first so at most one current
// year exists.
func (s *AcademicService) CreateSchoolYear(ctx context.Context, actor *domain.User, in ports.CreateSchoolYearInput) (*domain.SchoolYear, error) {
	if in.IsCurrent {
		if err := s.years.ClearCurrent(ctx); err != nil {
			return nil, fmt.Errorf("clear current year: %w", err)
		}
	}

	year := &domain.SchoolYear{
		ID:        uuid.NewString(),
		Year:      in.Year,
		StartDate: in.StartDate.UTC(),
		EndDate:   in.EndDate.UTC(),
		IsCurrent: in.IsCurrent,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.years.Insert(ctx, year); err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(actor, "school_year.create", "school_year", year.ID))
	s.log.Info().Str("year", year.Year).Bool("current", year.IsCurrent).Msg("school year created")
	return year, nil
}

func (s *AcademicService) ListSchoolYears(ctx context.Context) ([]*domain.SchoolYear, error) {
	return s.years.List(ctx)
}

func (s *AcademicService) CurrentSchoolYear(ctx context.Context) (*domain.SchoolYear, error) {
	return s.years.FindCurrent(ctx)
}

func (s *AcademicService) CreateSection(ctx context.Context, actor *domain.User, in ports.CreateSectionInput) (*domain.Section, error) {
	section := &domain.Section{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Capacity:  in.Capacity,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sections.Insert(ctx, section); err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(actor, "section.create", "section", section.ID))
	return section, nil
}

func (s *AcademicService) ListSections(ctx context.Context) ([]*domain.Section, error) {
	return s.sections.List(ctx)
}

func (s *AcademicService) CreateClass(ctx context.Context, actor *domain.User, in ports.CreateClassInput) (*domain.Class, error) {
	class := &domain.Class{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Numeric:      in.Numeric,
		TeacherID:    in.TeacherID,
		SchoolYearID: in.SchoolYearID,
		Sections:     in.Sections,
		CreatedAt:    time.Now().UTC(),
	}
	if class.Sections == nil {
		class.Sections = []string{}
	}
	if err := s.classes.Insert(ctx, class); err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(actor, "class.create", "class", class.ID))
	s.log.Info().Str("class", class.Name).Int("numeric", class.Numeric).Msg("class created")
	return class, nil
}

func (s *AcademicService) ListClasses(ctx context.Context, schoolYearID string) ([]*domain.Class, error) {
	return s.classes.List(ctx, schoolYearID)
}

func (s *AcademicService) GetClass(ctx context.Context, id string) (*domain.Class, error) {
	return s.classes.FindByID(ctx, id)
}

func (s *AcademicService) CreateSubject(ctx context.Context, actor *domain.User, in ports.CreateSubjectInput) (*domain.Subject, error) {
	subjectType := in.Type
	if subjectType == "" {
		subjectType = domain.SubjectMandatory
	}

	subject := &domain.Subject{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Code:      in.Code,
		ClassID:   in.ClassID,
		TeacherID: in.TeacherID,
		Type:      subjectType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.subjects.Insert(ctx, subject); err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(actor, "subject.create", "subject", subject.ID))
	return subject, nil
}

func (s *AcademicService) ListSubjects(ctx context.Context, classID string) ([]*domain.Subject, error) {
	return s.subjects.List(ctx, classID)
}
