package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
	"github.com/edusuite/school-system/internal/core/service"
)

// TestRouter_AuthFlow drives the full HTTP surface against in-memory
// repositories: registration, duplicate rejection, login, token-backed
// identity, role gating and the public settings route.
func TestRouter_AuthFlow(t *testing.T) {
	users := &memUserRepo{}
	audit := &memAuditRepo{}

	codec := service.NewTokenCodec("e2e-secret", time.Hour)
	authSvc := service.NewAuthService(users, codec, zerolog.Nop())
	recorder := noopRecorder{}

	deps := Deps{
		Auth:     authSvc,
		Users:    service.NewUserService(users, recorder, zerolog.Nop()),
		Academic: service.NewAcademicService(&memYearRepo{}, &memSectionRepo{}, &memClassRepo{}, &memSubjectRepo{}, recorder, zerolog.Nop()),
		People:   service.NewPeopleService(&memTeacherRepo{}, &memStudentRepo{}, &memParentRepo{}, recorder, zerolog.Nop()),
		Settings: service.NewSettingsService(&memSettingsRepo{}, recorder, zerolog.Nop()),
		Dashboard: service.NewDashboardService(
			&memStudentRepo{}, &memTeacherRepo{}, &memParentRepo{},
			&memClassRepo{}, &memSubjectRepo{}, &memSectionRepo{},
			nil, zerolog.Nop(),
		),
		Audit:       service.NewAuditService(audit),
		CORSOrigins: []string{"*"},
		Log:         zerolog.Nop(),
	}
	e := NewRouter(deps)

	var aliceToken, bobToken string

	t.Run("register teacher", func(t *testing.T) {
		rec := request(e, http.MethodPost, "/api/auth/register", "", registerBody("alice", "teacher"))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		resp := decodeBody(t, rec)
		if resp["username"] != "alice" || resp["role"] != "teacher" || resp["is_active"] != true {
			t.Fatalf("unexpected user payload: %+v", resp)
		}
		if _, leaked := resp["password_hash"]; leaked {
			t.Fatalf("password hash leaked in registration response")
		}
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		rec := request(e, http.MethodPost, "/api/auth/register", "", registerBody("alice", "teacher"))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["error"] != "username already registered" {
			t.Fatalf("unexpected error message: %v", resp["error"])
		}
	})

	t.Run("login wrong password", func(t *testing.T) {
		body := strings.NewReader(`{"username":"alice","password":"wrong-password"}`)
		rec := request(e, http.MethodPost, "/api/auth/login", "", body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["error"] != "incorrect username or password" {
			t.Fatalf("unexpected error message: %v", resp["error"])
		}
	})

	t.Run("login success", func(t *testing.T) {
		body := strings.NewReader(`{"username":"alice","password":"s3cret-alice"}`)
		rec := request(e, http.MethodPost, "/api/auth/login", "", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		resp := decodeBody(t, rec)
		if resp["token_type"] != "bearer" {
			t.Fatalf("unexpected token_type: %v", resp["token_type"])
		}
		token, _ := resp["access_token"].(string)
		if token == "" {
			t.Fatalf("expected access_token in response")
		}
		aliceToken = token
	})

	t.Run("me with token", func(t *testing.T) {
		rec := request(e, http.MethodGet, "/api/auth/me", aliceToken, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		if resp := decodeBody(t, rec); resp["username"] != "alice" {
			t.Fatalf("unexpected identity: %+v", resp)
		}
	})

	t.Run("me without token", func(t *testing.T) {
		rec := request(e, http.MethodGet, "/api/auth/me", "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("admin route denied for teacher", func(t *testing.T) {
		rec := request(e, http.MethodGet, "/api/users", aliceToken, nil)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d (%s)", rec.Code, rec.Body.String())
		}
		if resp := decodeBody(t, rec); resp["error"] != "not enough permissions" {
			t.Fatalf("unexpected error message: %v", resp["error"])
		}
	})

	t.Run("admin route allowed for admin", func(t *testing.T) {
		if rec := request(e, http.MethodPost, "/api/auth/register", "", registerBody("bob", "admin")); rec.Code != http.StatusOK {
			t.Fatalf("register bob: expected 200, got %d", rec.Code)
		}
		rec := request(e, http.MethodPost, "/api/auth/login", "", strings.NewReader(`{"username":"bob","password":"s3cret-bob"}`))
		if rec.Code != http.StatusOK {
			t.Fatalf("login bob: expected 200, got %d", rec.Code)
		}
		bobToken, _ = decodeBody(t, rec)["access_token"].(string)

		rec = request(e, http.MethodGet, "/api/users", bobToken, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		var list []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 users, got %d", len(list))
		}
	})

	t.Run("admin dashboard stats", func(t *testing.T) {
		rec := request(e, http.MethodGet, "/api/dashboard/stats", bobToken, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		resp := decodeBody(t, rec)
		if resp["total_students"] != float64(0) || resp["total_teachers"] != float64(0) {
			t.Fatalf("unexpected stats payload: %+v", resp)
		}
	})

	t.Run("settings are public", func(t *testing.T) {
		rec := request(e, http.MethodGet, "/api/settings", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["school_name"] != "School Management System" {
			t.Fatalf("expected default settings, got %+v", resp)
		}
	})
}

func request(e *echo.Echo, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerBody(username, role string) io.Reader {
	return strings.NewReader(fmt.Sprintf(
		`{"username":%q,"email":"%s@school.edu","name":"Test %s","password":"s3cret-%s","role":%q}`,
		username, username, username, username, role,
	))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid json: %v (body: %s)", err, rec.Body.String())
	}
	return m
}

// ---------------------------------------------------------------- Stubs ----

type noopRecorder struct{}

func (noopRecorder) Record(domain.AuditEvent) {}

type memUserRepo struct {
	users []*domain.User
}

func (r *memUserRepo) Insert(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *memUserRepo) FindCredentialsByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return publicClone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return publicClone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context, role domain.Role) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if role == "" || u.Role == role {
			out = append(out, publicClone(u))
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if upd.Username != nil {
			u.Username = *upd.Username
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Phone != nil {
			u.Phone = *upd.Phone
		}
		if upd.Address != nil {
			u.Address = *upd.Address
		}
		if upd.Photo != nil {
			u.Photo = *upd.Photo
		}
		if upd.Active != nil {
			u.Active = *upd.Active
		}
		return publicClone(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func publicClone(u *domain.User) *domain.User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

type memAuditRepo struct {
	events []*domain.AuditEvent
}

func (r *memAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	r.events = append(r.events, event)
	return nil
}

func (r *memAuditRepo) List(_ context.Context, limit int64) ([]*domain.AuditEvent, error) {
	var out []*domain.AuditEvent
	for i := len(r.events) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}

type memYearRepo struct {
	years []*domain.SchoolYear
}

func (r *memYearRepo) Insert(_ context.Context, year *domain.SchoolYear) error {
	r.years = append(r.years, year)
	return nil
}

func (r *memYearRepo) List(_ context.Context) ([]*domain.SchoolYear, error) {
	return r.years, nil
}

func (r *memYearRepo) FindCurrent(_ context.Context) (*domain.SchoolYear, error) {
	for _, y := range r.years {
		if y.IsCurrent {
			return y, nil
		}
	}
	return nil, domain.ErrNoCurrentYear
}

func (r *memYearRepo) ClearCurrent(_ context.Context) error {
	for _, y := range r.years {
		y.IsCurrent = false
	}
	return nil
}

type memSectionRepo struct {
	sections []*domain.Section
}

func (r *memSectionRepo) Insert(_ context.Context, section *domain.Section) error {
	r.sections = append(r.sections, section)
	return nil
}

func (r *memSectionRepo) List(_ context.Context) ([]*domain.Section, error) {
	return r.sections, nil
}

type memClassRepo struct {
	classes []*domain.Class
}

func (r *memClassRepo) Insert(_ context.Context, class *domain.Class) error {
	r.classes = append(r.classes, class)
	return nil
}

func (r *memClassRepo) List(_ context.Context, schoolYearID string) ([]*domain.Class, error) {
	var out []*domain.Class
	for _, cl := range r.classes {
		if schoolYearID == "" || cl.SchoolYearID == schoolYearID {
			out = append(out, cl)
		}
	}
	return out, nil
}

func (r *memClassRepo) FindByID(_ context.Context, id string) (*domain.Class, error) {
	for _, cl := range r.classes {
		if cl.ID == id {
			return cl, nil
		}
	}
	return nil, domain.ErrClassNotFound
}

func (r *memClassRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.classes)), nil
}

type memSubjectRepo struct {
	subjects []*domain.Subject
}

func (r *memSubjectRepo) Insert(_ context.Context, subject *domain.Subject) error {
	r.subjects = append(r.subjects, subject)
	return nil
}

func (r *memSubjectRepo) List(_ context.Context, classID string) ([]*domain.Subject, error) {
	var out []*domain.Subject
	for _, s := range r.subjects {
		if classID == "" || s.ClassID == classID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSubjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.subjects)), nil
}

type memTeacherRepo struct {
	teachers []*domain.Teacher
}

func (r *memTeacherRepo) Insert(_ context.Context, teacher *domain.Teacher) error {
	r.teachers = append(r.teachers, teacher)
	return nil
}

func (r *memTeacherRepo) List(_ context.Context) ([]*domain.Teacher, error) {
	return r.teachers, nil
}

func (r *memTeacherRepo) FindByID(_ context.Context, id string) (*domain.Teacher, error) {
	for _, te := range r.teachers {
		if te.ID == id {
			return te, nil
		}
	}
	return nil, domain.ErrTeacherNotFound
}

func (r *memTeacherRepo) FindByUserID(_ context.Context, userID string) (*domain.Teacher, error) {
	for _, te := range r.teachers {
		if te.UserID == userID {
			return te, nil
		}
	}
	return nil, domain.ErrTeacherNotFound
}

func (r *memTeacherRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.teachers)), nil
}

type memStudentRepo struct {
	students []*domain.Student
}

func (r *memStudentRepo) Insert(_ context.Context, student *domain.Student) error {
	for _, st := range r.students {
		if st.RollNo == student.RollNo && st.ClassID == student.ClassID && st.SchoolYearID == student.SchoolYearID {
			return domain.ErrRollNumberTaken
		}
	}
	r.students = append(r.students, student)
	return nil
}

func (r *memStudentRepo) List(_ context.Context, filter ports.StudentFilter) ([]*domain.Student, error) {
	var out []*domain.Student
	for _, st := range r.students {
		if filter.ClassID != "" && st.ClassID != filter.ClassID {
			continue
		}
		if filter.SectionID != "" && st.SectionID != filter.SectionID {
			continue
		}
		if filter.SchoolYearID != "" && st.SchoolYearID != filter.SchoolYearID {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func (r *memStudentRepo) FindByID(_ context.Context, id string) (*domain.Student, error) {
	for _, st := range r.students {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (r *memStudentRepo) FindByUserID(_ context.Context, userID string) (*domain.Student, error) {
	for _, st := range r.students {
		if st.UserID == userID {
			return st, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (r *memStudentRepo) Update(_ context.Context, id string, upd ports.StudentUpdate) (*domain.Student, error) {
	for _, st := range r.students {
		if st.ID == id {
			if upd.Name != nil {
				st.Name = *upd.Name
			}
			if upd.RollNo != nil {
				st.RollNo = *upd.RollNo
			}
			return st, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (r *memStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.students)), nil
}

type memParentRepo struct {
	parents []*domain.Parent
}

func (r *memParentRepo) Insert(_ context.Context, parent *domain.Parent) error {
	r.parents = append(r.parents, parent)
	return nil
}

func (r *memParentRepo) List(_ context.Context) ([]*domain.Parent, error) {
	return r.parents, nil
}

func (r *memParentRepo) FindByUserID(_ context.Context, userID string) (*domain.Parent, error) {
	for _, p := range r.parents {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, domain.ErrParentNotFound
}

func (r *memParentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.parents)), nil
}

type memSettingsRepo struct {
	stored *domain.Settings
}

func (r *memSettingsRepo) Replace(_ context.Context, settings *domain.Settings) error {
	r.stored = settings
	return nil
}

func (r *memSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	return r.stored, nil
}
