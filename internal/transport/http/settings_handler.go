package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type SettingsHandler struct {
	settings *service.SettingsService
}

func RegisterSettings(e *echo.Echo, settings *service.SettingsService, guard echo.MiddlewareFunc) {
	handler := &SettingsHandler{settings: settings}

	e.GET("/api/v1/settings", handler.get)

	admin := e.Group("/api/v1/admin/settings", guard)
	admin.GET("", handler.get)
	admin.PUT("", handler.replace)
}

func (h *SettingsHandler) get(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("settings", settings))
}

func (h *SettingsHandler) replace(c echo.Context) error {
	var settings domain.SiteSettings
	if err := c.Bind(&settings); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	stored, err := h.settings.Replace(c.Request().Context(), CurrentActor(c), &settings)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("settings", stored))
}
