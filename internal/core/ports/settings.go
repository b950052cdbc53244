package ports

import (
	"context"

	"github.com/edusuite/school-system/internal/core/domain"
)

// SettingsInput carries the full settings document; saving replaces whatever
// was stored before.
type SettingsInput struct {
	SchoolName     string
	SchoolCode     string
	Address        string
	Phone          string
	Email          string
	Website        string
	Logo           string
	Currency       string
	CurrencySymbol string
	Timezone       string
	Language       string
	DateFormat     string
	TimeFormat     string
}

// SettingsRepository persists the singleton settings document. Get returns
// (nil, nil) when nothing has been stored yet.
type SettingsRepository interface {
	Replace(ctx context.Context, settings *domain.Settings) error
	Get(ctx context.Context) (*domain.Settings, error)
}

// SettingsService manages school-wide settings. Get falls back to
// domain.DefaultSettings when none are stored.
type SettingsService interface {
	Save(ctx context.Context, actor *domain.User, in SettingsInput) (*domain.Settings, error)
	Get(ctx context.Context) (*domain.Settings, error)
}
