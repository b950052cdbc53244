package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edusuite/school-system/internal/api/handler"
	"github.com/edusuite/school-system/internal/api/middleware"
	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

// Deps carries the constructed services and infrastructure handles the
// router wires together. Services are built in main from the Mongo
// repositories; tests substitute in-memory implementations.
type Deps struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Academic  ports.AcademicService
	People    ports.PeopleService
	Settings  ports.SettingsService
	Dashboard ports.DashboardService
	Audit     ports.AuditService

	Mongo *mongo.Database
	Redis *redis.Client

	CORSOrigins []string
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("school"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	academicHandler := handler.NewAcademicHandler(deps.Academic)
	peopleHandler := handler.NewPeopleHandler(deps.People)
	settingsHandler := handler.NewSettingsHandler(deps.Settings)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	auditHandler := handler.NewAuditHandler(deps.Audit)

	// --- Probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Role gates ---
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	adminOrTeacher := middleware.RequireRole(domain.RoleAdmin, domain.RoleTeacher)

	api := e.Group("/api")

	// --- Public routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/settings", settingsHandler.Get)

	// --- Authenticated routes ---
	authed := api.Group("", middleware.Auth(deps.Auth))

	authed.GET("/auth/me", authHandler.Me)

	authed.GET("/users", userHandler.List, adminOnly)
	authed.GET("/users/:id", userHandler.Get)
	authed.PUT("/users/:id", userHandler.Update)
	authed.DELETE("/users/:id", userHandler.Delete, adminOnly)

	authed.POST("/school-years", academicHandler.CreateSchoolYear, adminOnly)
	authed.GET("/school-years", academicHandler.ListSchoolYears)
	authed.GET("/school-years/current", academicHandler.CurrentSchoolYear)

	authed.POST("/sections", academicHandler.CreateSection, adminOnly)
	authed.GET("/sections", academicHandler.ListSections)

	authed.POST("/classes", academicHandler.CreateClass, adminOnly)
	authed.GET("/classes", academicHandler.ListClasses)
	authed.GET("/classes/:id", academicHandler.GetClass)

	authed.POST("/subjects", academicHandler.CreateSubject, adminOrTeacher)
	authed.GET("/subjects", academicHandler.ListSubjects)

	authed.POST("/teachers", peopleHandler.CreateTeacher, adminOnly)
	authed.GET("/teachers", peopleHandler.ListTeachers)
	authed.GET("/teachers/:id", peopleHandler.GetTeacher)

	authed.POST("/students", peopleHandler.CreateStudent, adminOnly)
	authed.GET("/students", peopleHandler.ListStudents)
	authed.GET("/students/:id", peopleHandler.GetStudent)
	authed.PUT("/students/:id", peopleHandler.UpdateStudent, adminOrTeacher)

	authed.POST("/parents", peopleHandler.CreateParent, adminOnly)
	authed.GET("/parents", peopleHandler.ListParents)

	authed.POST("/settings", settingsHandler.Save, adminOnly)

	authed.GET("/dashboard/stats", dashboardHandler.Stats)

	authed.GET("/audit", auditHandler.List, adminOnly)

	return e
}
