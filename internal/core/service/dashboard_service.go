package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

// StatsCache caches the admin dashboard counters. GetAdminStats returns
// (nil, nil) on a miss.
type StatsCache interface {
	GetAdminStats(ctx context.Context) (*ports.DashboardStats, error)
	SetAdminStats(ctx context.Context, stats *ports.DashboardStats) error
}

// DashboardService computes the role-scoped dashboard payload.
type DashboardService struct {
	students ports.StudentRepository
	teachers ports.TeacherRepository
	parents  ports.ParentRepository
	classes  ports.ClassRepository
	subjects ports.SubjectRepository
	sections ports.SectionRepository
	cache    StatsCache
	log      zerolog.Logger
}

func NewDashboardService(
	students ports.StudentRepository,
	teachers ports.TeacherRepository,
	parents ports.ParentRepository,
	classes ports.ClassRepository,
	subjects ports.SubjectRepository,
	sections ports.SectionRepository,
	cache StatsCache,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		students: students,
		teachers: teachers,
		parents:  parents,
		classes:  classes,
		subjects: subjects,
		sections: sections,
		cache:    cache,
		log:      log,
	}
}

// Stats returns only the counters the actor's role is entitled to see.
// An actor with no linked profile record gets an empty payload, not an
// error.
func (s *DashboardService) Stats(ctx context.Context, actor *domain.User) (*ports.DashboardStats, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		return s.adminStats(ctx)
	case domain.RoleTeacher:
		return s.teacherStats(ctx, actor)
	case domain.RoleStudent:
		return s.studentStats(ctx, actor)
	case domain.RoleParent:
		return s.parentStats(ctx, actor)
	default:
		return &ports.DashboardStats{}, nil
	}
}

func (s *DashboardService) adminStats(ctx context.Context) (*ports.DashboardStats, error) {
	if s.cache != nil {
		cached, err := s.cache.GetAdminStats(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed, counting directly")
		} else if cached != nil {
			return cached, nil
		}
	}

	students, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.teachers.Count(ctx)
	if err != nil {
		return nil, err
	}
	parents, err := s.parents.Count(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := s.classes.Count(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.subjects.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{
		TotalStudents: &students,
		TotalTeachers: &teachers,
		TotalParents:  &parents,
		TotalClasses:  &classes,
		TotalSubjects: &subjects,
	}

	if s.cache != nil {
		if err := s.cache.SetAdminStats(ctx, stats); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *DashboardService) teacherStats(ctx context.Context, actor *domain.User) (*ports.DashboardStats, error) {
	teacher, err := s.teachers.FindByUserID(ctx, actor.ID)
	if errors.Is(err, domain.ErrTeacherNotFound) {
		return &ports.DashboardStats{}, nil
	}
	if err != nil {
		return nil, err
	}

	classes := len(teacher.Classes)
	subjects := len(teacher.Subjects)
	return &ports.DashboardStats{MyClasses: &classes, MySubjects: &subjects}, nil
}

func (s *DashboardService) studentStats(ctx context.Context, actor *domain.User) (*ports.DashboardStats, error) {
	student, err := s.students.FindByUserID(ctx, actor.ID)
	if errors.Is(err, domain.ErrStudentNotFound) {
		return &ports.DashboardStats{}, nil
	}
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{}
	if student.ClassID != "" {
		class, err := s.classes.FindByID(ctx, student.ClassID)
		switch {
		case err == nil:
			stats.MyClass = class.Name
		case !errors.Is(err, domain.ErrClassNotFound):
			return nil, err
		}
	}
	if student.SectionID != "" {
		sections, err := s.sections.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, sec := range sections {
			if sec.ID == student.SectionID {
				stats.MySection = sec.Name
				break
			}
		}
	}
	return stats, nil
}

func (s *DashboardService) parentStats(ctx context.Context, actor *domain.User) (*ports.DashboardStats, error) {
	parent, err := s.parents.FindByUserID(ctx, actor.ID)
	if errors.Is(err, domain.ErrParentNotFound) {
		return &ports.DashboardStats{}, nil
	}
	if err != nil {
		return nil, err
	}

	children := len(parent.StudentIDs)
	return &ports.DashboardStats{MyChildren: &children}, nil
}
