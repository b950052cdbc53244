package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edusuite/school-system/internal/core/ports"
)

// PeopleHandler serves teacher, student and parent records.
type PeopleHandler struct {
	people ports.PeopleService
}

func NewPeopleHandler(people ports.PeopleService) *PeopleHandler {
	return &PeopleHandler{people: people}
}

// CreateTeacher handles POST /api/teachers.
//
// @Summary      Create a teacher profile
// @Tags         people
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTeacherRequest  true  "Teacher details"
// @Success      200   {object}  domain.Teacher
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /teachers [post]
func (h *PeopleHandler) CreateTeacher(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTeacherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	teacher, err := h.people.CreateTeacher(c.Request().Context(), actor, toCreateTeacherInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teacher)
}

// ListTeachers handles GET /api/teachers.
//
// @Summary      List teachers
// @Tags         people
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Teacher
// @Router       /teachers [get]
func (h *PeopleHandler) ListTeachers(c echo.Context) error {
	teachers, err := h.people.ListTeachers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teachers)
}

// GetTeacher handles GET /api/teachers/:id.
//
// @Summary      Get a teacher by id
// @Tags         people
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Teacher id"
// @Success      200  {object}  domain.Teacher
// @Failure      404  {object}  errorResponse
// @Router       /teachers/{id} [get]
func (h *PeopleHandler) GetTeacher(c echo.Context) error {
	teacher, err := h.people.GetTeacher(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teacher)
}

// CreateStudent handles POST /api/students.
//
// @Summary      Enroll a student
// @Tags         people
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStudentRequest  true  "Student details"
// @Success      200   {object}  domain.Student
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /students [post]
func (h *PeopleHandler) CreateStudent(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	student, err := h.people.CreateStudent(c.Request().Context(), actor, toCreateStudentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// ListStudents handles GET /api/students with optional class, section and
// school-year filters.
//
// @Summary      List students
// @Tags         people
// @Produce      json
// @Security     BearerAuth
// @Param        class_id        query    string  false  "Filter by class"
// @Param        section_id      query    string  false  "Filter by section"
// @Param        school_year_id  query    string  false  "Filter by school year"
// @Success      200  {array}  domain.Student
// @Router       /students [get]
func (h *PeopleHandler) ListStudents(c echo.Context) error {
	students, err := h.people.ListStudents(c.Request().Context(), ports.StudentFilter{
		ClassID:      c.QueryParam("class_id"),
		SectionID:    c.QueryParam("section_id"),
		SchoolYearID: c.QueryParam("school_year_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

// GetStudent handles GET /api/students/:id.
//
// @Summary      Get a student by id
// @Tags         people
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  domain.Student
// @Failure      404  {object}  errorResponse
// @Router       /students/{id} [get]
func (h *PeopleHandler) GetStudent(c echo.Context) error {
	student, err := h.people.GetStudent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// UpdateStudent handles PUT /api/students/:id.
//
// @Summary      Update a student record
// @Tags         people
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Student id"
// @Param        body  body      updateStudentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Student
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /students/{id} [put]
func (h *PeopleHandler) UpdateStudent(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	student, err := h.people.UpdateStudent(c.Request().Context(), actor, c.Param("id"), toStudentUpdate(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// CreateParent handles POST /api/parents.
//
// @Summary      Create a parent profile
// @Tags         people
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createParentRequest  true  "Parent details"
// @Success      200   {object}  domain.Parent
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /parents [post]
func (h *PeopleHandler) CreateParent(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createParentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	parent, err := h.people.CreateParent(c.Request().Context(), actor, toCreateParentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parent)
}

// ListParents handles GET /api/parents.
//
// @Summary      List parents
// @Tags         people
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Parent
// @Router       /parents [get]
func (h *PeopleHandler) ListParents(c echo.Context) error {
	parents, err := h.people.ListParents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parents)
}
