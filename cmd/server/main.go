package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/edusuite/school-system/docs"
	"github.com/edusuite/school-system/internal/api"
	"github.com/edusuite/school-system/internal/core/service"
	"github.com/edusuite/school-system/internal/infrastructure/config"
	mongodb "github.com/edusuite/school-system/internal/infrastructure/db/mongo"
	redisdb "github.com/edusuite/school-system/internal/infrastructure/db/redis"
	"github.com/edusuite/school-system/internal/infrastructure/queue"
	"github.com/edusuite/school-system/pkg/logger"
)

// @title           School System API
// @version         1.0
// @description     School administration backend: user accounts and roles, academic structure, people records, settings and dashboards.
// @BasePath        /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.Options{})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration failed")
	}
	log = logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	yearRepo := mongodb.NewSchoolYearRepository(db)
	sectionRepo := mongodb.NewSectionRepository(db)
	classRepo := mongodb.NewClassRepository(db)
	subjectRepo := mongodb.NewSubjectRepository(db)
	teacherRepo := mongodb.NewTeacherRepository(db)
	studentRepo := mongodb.NewStudentRepository(db)
	parentRepo := mongodb.NewParentRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	ensurers := []interface {
		EnsureIndexes(context.Context) error
	}{userRepo, studentRepo, teacherRepo, parentRepo, auditRepo}
	for _, repo := range ensurers {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index bootstrap failed")
		}
	}

	// --- Audit trail ---
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditRepo, log)
	dispatcher.Start(ctx)

	// --- Services ---
	codec := service.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	statsCache := redisdb.NewStatsCache(rdb, cfg.Redis.StatsTTL)

	deps := api.Deps{
		Auth:     service.NewAuthService(userRepo, codec, log),
		Users:    service.NewUserService(userRepo, dispatcher, log),
		Academic: service.NewAcademicService(yearRepo, sectionRepo, classRepo, subjectRepo, dispatcher, log),
		People:   service.NewPeopleService(teacherRepo, studentRepo, parentRepo, dispatcher, log),
		Settings: service.NewSettingsService(settingsRepo, dispatcher, log),
		Dashboard: service.NewDashboardService(
			studentRepo, teacherRepo, parentRepo,
			classRepo, subjectRepo, sectionRepo,
			statsCache, log,
		),
		Audit: service.NewAuditService(auditRepo),

		Mongo:       db,
		Redis:       rdb,
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	}

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
