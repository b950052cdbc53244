package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

// AcademicHandler serves school years, sections, classes and subjects.
type AcademicHandler struct {
	academic ports.AcademicService
}

func NewAcademicHandler(academic ports.AcademicService) *AcademicHandler {
	return &AcademicHandler{academic: academic}
}

// CreateSchoolYear handles POST /api/school-years.
//
// @Summary      Create a school year
// @Tags         academic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSchoolYearRequest  true  "School year details"
// @Success      200   {object}  domain.SchoolYear
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /school-years [post]
func (h *AcademicHandler) CreateSchoolYear(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createSchoolYearRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	year, err := h.academic.CreateSchoolYear(c.Request().Context(), actor, ports.CreateSchoolYearInput{
		Year:      req.Year,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsCurrent: req.IsCurrent,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, year)
}

// ListSchoolYears handles GET /api/school-years.
//
// @Summary      List school years, newest first
// @Tags         academic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.SchoolYear
// @Router       /school-years [get]
func (h *AcademicHandler) ListSchoolYears(c echo.Context) error {
	years, err := h.academic.ListSchoolYears(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, years)
}

// CurrentSchoolYear handles GET /api/school-years/current.
//
// @Summary      Get the current school year
// @Tags         academic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.SchoolYear
// @Failure      404  {object}  errorResponse
// @Router       /school-years/current [get]
func (h *AcademicHandler) CurrentSchoolYear(c echo.Context) error {
	year, err := h.academic.CurrentSchoolYear(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, year)
}

// CreateSection handles POST /api/sections.
//
// @Summary      Create a section
// @Tags         academic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSectionRequest  true  "Section details"
// @Success      200   {object}  domain.Section
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /sections [post]
func (h *AcademicHandler) CreateSection(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createSectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	section, err := h.academic.CreateSection(c.Request().Context(), actor, ports.CreateSectionInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, section)
}

// ListSections handles GET /api/sections.
//
// @Summary      List sections
// @Tags         academic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Section
// @Router       /sections [get]
func (h *AcademicHandler) ListSections(c echo.Context) error {
	sections, err := h.academic.ListSections(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sections)
}

// CreateClass handles POST /api/classes.
//
// @Summary      Create a class
// @Tags         academic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClassRequest  true  "Class details"
// @Success      200   {object}  domain.Class
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /classes [post]
func (h *AcademicHandler) CreateClass(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	class, err := h.academic.CreateClass(c.Request().Context(), actor, ports.CreateClassInput{
		Name:         req.Name,
		Numeric:      req.Numeric,
		TeacherID:    req.TeacherID,
		SchoolYearID: req.SchoolYearID,
		Sections:     req.Sections,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, class)
}

// ListClasses handles GET /api/classes, optionally scoped to a school year.
//
// @Summary      List classes sorted by grade
// @Tags         academic
// @Produce      json
// @Security     BearerAuth
// @Param        school_year_id  query    string  false  "Filter by school year"
// @Success      200  {array}  domain.Class
// @Router       /classes [get]
func (h *AcademicHandler) ListClasses(c echo.Context) error {
	classes, err := h.academic.ListClasses(c.Request().Context(), c.QueryParam("school_year_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

// GetClass handles GET /api/classes/:id.
//
// @Summary      Get a class by id
// @Tags         academic
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Class id"
// @Success      200  {object}  domain.Class
// @Failure      404  {object}  errorResponse
// @Router       /classes/{id} [get]
func (h *AcademicHandler) GetClass(c echo.Context) error {
	class, err := h.academic.GetClass(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, class)
}

// CreateSubject handles POST /api/subjects.
//
// @Summary      Create a subject
// @Tags         academic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSubjectRequest  true  "Subject details"
// @Success      200   {object}  domain.Subject
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /subjects [post]
func (h *AcademicHandler) CreateSubject(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createSubjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	subject, err := h.academic.CreateSubject(c.Request().Context(), actor, ports.CreateSubjectInput{
		Name:      req.Name,
		Code:      req.Code,
		ClassID:   req.ClassID,
		TeacherID: req.TeacherID,
		Type:      domain.SubjectType(req.Type),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subject)
}

// ListSubjects handles GET /api/subjects, optionally scoped to a class.
//
// @Summary      List subjects
// @Tags         academic
// @Produce      json
// @Security     BearerAuth
// @Param        class_id  query    string  false  "Filter by class"
// @Success      200  {array}  domain.Subject
// @Router       /subjects [get]
func (h *AcademicHandler) ListSubjects(c echo.Context) error {
	subjects, err := h.academic.ListSubjects(c.Request().Context(), c.QueryParam("class_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subjects)
}
