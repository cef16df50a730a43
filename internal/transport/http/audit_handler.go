package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type AuditHandler struct {
	audit *service.AuditService
}

func RegisterAudit(e *echo.Echo, audit *service.AuditService, guard echo.MiddlewareFunc) {
	handler := &AuditHandler{audit: audit}
	e.GET("/api/v1/admin/audit", handler.recent, guard)
}

func (h *AuditHandler) recent(c echo.Context) error {
	entries, err := h.audit.Recent(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("entries", entries))
}
