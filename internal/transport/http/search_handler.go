package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type SearchHandler struct {
	search *service.SearchService
}

func RegisterSearch(e *echo.Echo, search *service.SearchService, guard echo.MiddlewareFunc) {
	handler := &SearchHandler{search: search}
	e.GET("/api/v1/admin/search", handler.handleSearch, guard)
}

func (h *SearchHandler) handleSearch(c echo.Context) error {
	results, err := h.search.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("results", results))
}
