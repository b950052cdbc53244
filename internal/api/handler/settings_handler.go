package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edusuite/school-system/internal/core/ports"
)

// SettingsHandler serves the school-wide settings document.
type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type saveSettingsRequest struct {
	SchoolName     string `json:"school_name" validate:"required"`
	SchoolCode     string `json:"school_code"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	Website        string `json:"website"`
	Logo           string `json:"logo"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currency_symbol"`
	Timezone       string `json:"timezone"`
	Language       string `json:"language"`
	DateFormat     string `json:"date_format"`
	TimeFormat     string `json:"time_format"`
}

// Save handles POST /api/settings. The stored document is replaced wholesale.
//
// @Summary      Save school settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveSettingsRequest  true  "Settings document"
// @Success      200   {object}  domain.Settings
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /settings [post]
func (h *SettingsHandler) Save(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req saveSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	settings, err := h.settings.Save(c.Request().Context(), actor, ports.SettingsInput{
		SchoolName:     req.SchoolName,
		SchoolCode:     req.SchoolCode,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		Website:        req.Website,
		Logo:           req.Logo,
		Currency:       req.Currency,
		CurrencySymbol: req.CurrencySymbol,
		Timezone:       req.Timezone,
		Language:       req.Language,
		DateFormat:     req.DateFormat,
		TimeFormat:     req.TimeFormat,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Get handles GET /api/settings. Public: the frontend needs branding before
// anyone logs in. Falls back to defaults when nothing is stored.
//
// @Summary      Get school settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Settings
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
