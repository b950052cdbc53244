package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubYearRepo struct {
	years []*domain.SchoolYear
	ops   []string // call order, "clear" / "insert"
}

func (r *stubYearRepo) Insert(_ context.Context, year *domain.SchoolYear) error {
	r.ops = append(r.ops, "insert")
	r.years = append(r.years, year)
	return nil
}

func (r *stubYearRepo) List(_ context.Context) ([]*domain.SchoolYear, error) {
	return r.years, nil
}

func (r *stubYearRepo) FindCurrent(_ context.Context) (*domain.SchoolYear, error) {
	for _, y := range r.years {
		if y.IsCurrent {
			return y, nil
		}
	}
	return nil, domain.ErrNoCurrentYear
}

func (r *stubYearRepo) ClearCurrent(_ context.Context) error {
	r.ops = append(r.ops, "clear")
	for _, y := range r.years {
		y.IsCurrent = false
	}
	return nil
}

type stubSectionRepo struct {
	sections []*domain.Section
}

func (r *stubSectionRepo) Insert(_ context.Context, section *domain.Section) error {
	r.sections = append(r.sections, section)
	return nil
}

func (r *stubSectionRepo) List(_ context.Context) ([]*domain.Section, error) {
	return r.sections, nil
}

type stubClassRepo struct {
	classes []*domain.Class
}

func (r *stubClassRepo) Insert(_ context.Context, class *domain.Class) error {
	r.classes = append(r.classes, class)
	return nil
}

func (r *stubClassRepo) List(_ context.Context, schoolYearID string) ([]*domain.Class, error) {
	if schoolYearID == "" {
		return r.classes, nil
	}
	out := []*domain.Class{}
	for _, c := range r.classes {
		if c.SchoolYearID == schoolYearID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubClassRepo) FindByID(_ context.Context, id string) (*domain.Class, error) {
	for _, c := range r.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrClassNotFound
}

func (r *stubClassRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.classes)), nil
}

type stubSubjectRepo struct {
	subjects []*domain.Subject
}

func (r *stubSubjectRepo) Insert(_ context.Context, subject *domain.Subject) error {
	r.subjects = append(r.subjects, subject)
	return nil
}

func (r *stubSubjectRepo) List(_ context.Context, classID string) ([]*domain.Subject, error) {
	if classID == "" {
		return r.subjects, nil
	}
	out := []*domain.Subject{}
	for _, s := range r.subjects {
		if s.ClassID == classID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSubjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.subjects)), nil
}

func newAcademicSvc(years *stubYearRepo, audit *stubRecorder) *AcademicService {
	return NewAcademicService(years, &stubSectionRepo{}, &stubClassRepo{}, &stubSubjectRepo{}, audit, zerolog.Nop())
}

var testAdmin = &domain.User{ID: "id-root", Username: "root", Role: domain.RoleAdmin, Active: true}

// ---------------------------------------------------------------------------
// School years
// ---------------------------------------------------------------------------

func TestAcademicService_CreateSchoolYear_CurrentClearsPrevious(t *testing.T) {
	years := &stubYearRepo{years: []*domain.SchoolYear{
		{ID: "y1", Year: "2024-2025", IsCurrent: true},
	}}
	svc := newAcademicSvc(years, &stubRecorder{})

	created, err := svc.CreateSchoolYear(context.Background(), testAdmin, ports.CreateSchoolYearInput{
		Year:      "2025-2026",
		StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		IsCurrent: true,
	})
	if err != nil {
		t.Fatalf("CreateSchoolYear returned error: %v", err)
	}
	if !created.IsCurrent {
		t.Fatalf("expected created year to be current")
	}

	// The old flag must be gone before the new year lands.
	if len(years.ops) != 2 || years.ops[0] != "clear" || years.ops[1] != "insert" {
		t.Fatalf("expected clear before insert, got %v", years.ops)
	}

	current, err := years.FindCurrent(context.Background())
	if err != nil {
		t.Fatalf("FindCurrent returned error: %v", err)
	}
	if current.Year != "2025-2026" {
		t.Fatalf("expected new year to be the only current one, got %s", current.Year)
	}
}

func TestAcademicService_CreateSchoolYear_NotCurrentKeepsFlag(t *testing.T) {
	years := &stubYearRepo{years: []*domain.SchoolYear{
		{ID: "y1", Year: "2024-2025", IsCurrent: true},
	}}
	svc := newAcademicSvc(years, &stubRecorder{})

	if _, err := svc.CreateSchoolYear(context.Background(), testAdmin, ports.CreateSchoolYearInput{
		Year:      "2023-2024",
		StartDate: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("CreateSchoolYear returned error: %v", err)
	}

	current, err := years.FindCurrent(context.Background())
	if err != nil {
		t.Fatalf("FindCurrent returned error: %v", err)
	}
	if current.Year != "2024-2025" {
		t.Fatalf("expected existing current year to survive, got %s", current.Year)
	}
}

func TestAcademicService_CurrentSchoolYear_NoneSet(t *testing.T) {
	svc := newAcademicSvc(&stubYearRepo{}, &stubRecorder{})

	if _, err := svc.CurrentSchoolYear(context.Background()); err != domain.ErrNoCurrentYear {
		t.Fatalf("expected ErrNoCurrentYear, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Classes and subjects
// ---------------------------------------------------------------------------

func TestAcademicService_CreateClass_NilSectionsBecomeEmpty(t *testing.T) {
	svc := newAcademicSvc(&stubYearRepo{}, &stubRecorder{})

	class, err := svc.CreateClass(context.Background(), testAdmin, ports.CreateClassInput{
		Name:    "Grade 5",
		Numeric: 5,
	})
	if err != nil {
		t.Fatalf("CreateClass returned error: %v", err)
	}
	if class.Sections == nil {
		t.Fatalf("expected sections to serialize as [], got nil")
	}
}

func TestAcademicService_CreateSubject_TypeDefaultsMandatory(t *testing.T) {
	svc := newAcademicSvc(&stubYearRepo{}, &stubRecorder{})

	subject, err := svc.CreateSubject(context.Background(), testAdmin, ports.CreateSubjectInput{
		Name:    "Mathematics",
		Code:    "MATH-5",
		ClassID: "c1",
	})
	if err != nil {
		t.Fatalf("CreateSubject returned error: %v", err)
	}
	if subject.Type != domain.SubjectMandatory {
		t.Fatalf("expected mandatory default, got %s", subject.Type)
	}

	optional, err := svc.CreateSubject(context.Background(), testAdmin, ports.CreateSubjectInput{
		Name:    "Music",
		Code:    "MUS-5",
		ClassID: "c1",
		Type:    domain.SubjectOptional,
	})
	if err != nil {
		t.Fatalf("CreateSubject returned error: %v", err)
	}
	if optional.Type != domain.SubjectOptional {
		t.Fatalf("expected explicit optional to stick, got %s", optional.Type)
	}
}

func TestAcademicService_MutationsAreAudited(t *testing.T) {
	audit := &stubRecorder{}
	svc := newAcademicSvc(&stubYearRepo{}, audit)

	if _, err := svc.CreateSection(context.Background(), testAdmin, ports.CreateSectionInput{Name: "A", Capacity: 30}); err != nil {
		t.Fatalf("CreateSection returned error: %v", err)
	}
	if _, err := svc.CreateClass(context.Background(), testAdmin, ports.CreateClassInput{Name: "Grade 1", Numeric: 1}); err != nil {
		t.Fatalf("CreateClass returned error: %v", err)
	}

	if len(audit.events) != 2 {
		t.Fatalf("expected 2 audit events, got %d", len(audit.events))
	}
	if audit.events[0].Action != "section.create" || audit.events[1].Action != "class.create" {
		t.Fatalf("unexpected audit actions: %+v", audit.events)
	}
	if audit.events[0].ActorID != "id-root" || audit.events[0].ActorRole != domain.RoleAdmin {
		t.Fatalf("expected actor attribution, got %+v", audit.events[0])
	}
}
