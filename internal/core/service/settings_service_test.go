package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

type stubSettingsRepo struct {
	stored *domain.Settings
}

func (r *stubSettingsRepo) Replace(_ context.Context, settings *domain.Settings) error {
	r.stored = settings
	return nil
}

func (r *stubSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	return r.stored, nil
}

func TestSettingsService_Get_DefaultsWhenEmpty(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{}, &stubRecorder{}, zerolog.Nop())

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if settings.SchoolName != "School Management System" {
		t.Fatalf("expected default school name, got %q", settings.SchoolName)
	}
	if settings.Currency != "USD" || settings.CurrencySymbol != "$" {
		t.Fatalf("expected default currency, got %s %s", settings.Currency, settings.CurrencySymbol)
	}
	if settings.Timezone != "UTC" {
		t.Fatalf("expected default timezone, got %q", settings.Timezone)
	}
}

func TestSettingsService_SaveThenGet(t *testing.T) {
	repo := &stubSettingsRepo{}
	audit := &stubRecorder{}
	svc := NewSettingsService(repo, audit, zerolog.Nop())

	saved, err := svc.Save(context.Background(), testAdmin, ports.SettingsInput{
		SchoolName: "Hillview Academy",
		Currency:   "EUR",
		Timezone:   "Europe/Madrid",
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated id")
	}

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.SchoolName != "Hillview Academy" {
		t.Fatalf("expected saved settings back, got %q", got.SchoolName)
	}

	if len(audit.events) != 1 || audit.events[0].Action != "settings.save" {
		t.Fatalf("expected settings.save audit event, got %+v", audit.events)
	}
}

func TestSettingsService_SaveReplacesPrevious(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, &stubRecorder{}, zerolog.Nop())

	if _, err := svc.Save(context.Background(), testAdmin, ports.SettingsInput{SchoolName: "First", Email: "a@school.test"}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if _, err := svc.Save(context.Background(), testAdmin, ports.SettingsInput{SchoolName: "Second"}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	// Whole-document replace: fields absent from the second save are gone.
	if got.SchoolName != "Second" || got.Email != "" {
		t.Fatalf("expected wholesale replacement, got %+v", got)
	}
}
