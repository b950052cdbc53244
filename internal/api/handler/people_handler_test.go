package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

type stubPeopleService struct {
	createStudentFn func(ctx context.Context, actor *domain.User, in ports.CreateStudentInput) (*domain.Student, error)
	updateStudentFn func(ctx context.Context, actor *domain.User, id string, upd ports.StudentUpdate) (*domain.Student, error)
	listStudentsFn  func(ctx context.Context, filter ports.StudentFilter) ([]*domain.Student, error)
}

func (s *stubPeopleService) CreateTeacher(ctx context.Context, actor *domain.User, in ports.CreateTeacherInput) (*domain.Teacher, error) {
	return nil, nil
}

func (s *stubPeopleService) ListTeachers(ctx context.Context) ([]*domain.Teacher, error) {
	return nil, nil
}

func (s *stubPeopleService) GetTeacher(ctx context.Context, id string) (*domain.Teacher, error) {
	return nil, nil
}

func (s *stubPeopleService) CreateStudent(ctx context.Context, actor *domain.User, in ports.CreateStudentInput) (*domain.Student, error) {
	return s.createStudentFn(ctx, actor, in)
}

func (s *stubPeopleService) ListStudents(ctx context.Context, filter ports.StudentFilter) ([]*domain.Student, error) {
	return s.listStudentsFn(ctx, filter)
}

func (s *stubPeopleService) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	return nil, nil
}

func (s *stubPeopleService) UpdateStudent(ctx context.Context, actor *domain.User, id string, upd ports.StudentUpdate) (*domain.Student, error) {
	return s.updateStudentFn(ctx, actor, id, upd)
}

func (s *stubPeopleService) CreateParent(ctx context.Context, actor *domain.User, in ports.CreateParentInput) (*domain.Parent, error) {
	return nil, nil
}

func (s *stubPeopleService) ListParents(ctx context.Context) ([]*domain.Parent, error) {
	return nil, nil
}

func adminContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("identity", &domain.User{ID: "id-root", Username: "root", Role: domain.RoleAdmin, Active: true})
	return c
}

func TestPeopleHandler_CreateStudent_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPeopleService{
		createStudentFn: func(ctx context.Context, actor *domain.User, in ports.CreateStudentInput) (*domain.Student, error) {
			if actor.Username != "root" {
				t.Fatalf("unexpected actor: %s", actor.Username)
			}
			if in.RollNo != "17" || in.Gender != domain.GenderFemale {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Student{ID: "st1", Name: in.Name, RollNo: in.RollNo, ClassID: in.ClassID}, nil
		},
	}
	handler := NewPeopleHandler(stub)

	body := strings.NewReader(`{"name":"Mia","roll_no":"17","class_id":"c5","section_id":"sA","school_year_id":"y24","gender":"female"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/students", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	if err := handler.CreateStudent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["roll_no"] != "17" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPeopleHandler_CreateStudent_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubPeopleService{
		createStudentFn: func(ctx context.Context, actor *domain.User, in ports.CreateStudentInput) (*domain.Student, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPeopleHandler(stub)

	body := strings.NewReader(`{"name":"Mia"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/students", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	err := handler.CreateStudent(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestPeopleHandler_CreateStudent_DuplicateRoll(t *testing.T) {
	e := newTestEcho()
	stub := &stubPeopleService{
		createStudentFn: func(ctx context.Context, actor *domain.User, in ports.CreateStudentInput) (*domain.Student, error) {
			return nil, domain.ErrRollNumberTaken
		},
	}
	handler := NewPeopleHandler(stub)

	body := strings.NewReader(`{"name":"Mia","roll_no":"17","class_id":"c5","section_id":"sA","school_year_id":"y24"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/students", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	if err := handler.CreateStudent(c); !errors.Is(err, domain.ErrRollNumberTaken) {
		t.Fatalf("expected ErrRollNumberTaken, got %v", err)
	}
}

func TestPeopleHandler_UpdateStudent_MapsPointerFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubPeopleService{
		updateStudentFn: func(ctx context.Context, actor *domain.User, id string, upd ports.StudentUpdate) (*domain.Student, error) {
			if id != "st1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if upd.Name == nil || *upd.Name != "Mia R." {
				t.Fatalf("expected name update, got %+v", upd.Name)
			}
			if upd.Gender == nil || *upd.Gender != domain.GenderFemale {
				t.Fatalf("expected gender update, got %+v", upd.Gender)
			}
			if upd.RollNo != nil {
				t.Fatalf("roll_no should stay nil when absent from the payload")
			}
			return &domain.Student{ID: id, Name: *upd.Name}, nil
		},
	}
	handler := NewPeopleHandler(stub)

	body := strings.NewReader(`{"name":"Mia R.","gender":"female"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/students/st1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("st1")

	if err := handler.UpdateStudent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPeopleHandler_ListStudents_PassesFilters(t *testing.T) {
	e := newTestEcho()
	stub := &stubPeopleService{
		listStudentsFn: func(ctx context.Context, filter ports.StudentFilter) ([]*domain.Student, error) {
			if filter.ClassID != "c5" || filter.SectionID != "sA" || filter.SchoolYearID != "" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return []*domain.Student{{ID: "st1"}, {ID: "st2"}}, nil
		},
	}
	handler := NewPeopleHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/students?class_id=c5&section_id=sA", nil)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	if err := handler.ListStudents(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 students, got %d", len(resp))
	}
}
