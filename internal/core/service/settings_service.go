package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

// SettingsService holds the single school-wide settings document.
type SettingsService struct {
	repo  ports.SettingsRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, audit ports.AuditRecorder, log zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, audit: audit, log: log}
}

// Save replaces the settings document wholesale. There is at most one.
func (s *SettingsService) Save(ctx context.Context, actor *domain.User, in ports.SettingsInput) (*domain.Settings, error) {
	settings := &domain.Settings{
		ID:             uuid.NewString(),
		SchoolName:     in.SchoolName,
		SchoolCode:     in.SchoolCode,
		Address:        in.Address,
		Phone:          in.Phone,
		Email:          in.Email,
		Website:        in.Website,
		Logo:           in.Logo,
		Currency:       in.Currency,
		CurrencySymbol: in.CurrencySymbol,
		Timezone:       in.Timezone,
		Language:       in.Language,
		DateFormat:     in.DateFormat,
		TimeFormat:     in.TimeFormat,
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Replace(ctx, settings); err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(actor, "settings.save", "settings", settings.ID))
	s.log.Info().Str("school_name", settings.SchoolName).Msg("settings saved")
	return settings, nil
}

// Get returns the stored settings, or the built-in defaults when none
// have been saved yet.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}
