package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/collection"
	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type ServiceHandler struct {
	content *service.ContentService
}

func RegisterServices(e *echo.Echo, content *service.ContentService, guard echo.MiddlewareFunc) {
	handler := &ServiceHandler{content: content}

	public := e.Group("/api/v1/services")
	public.GET("", handler.browse)
	public.GET("/:slug", handler.getBySlug)

	admin := e.Group("/api/v1/admin/services", guard)
	admin.GET("", handler.list)
	admin.POST("", handler.create)
	admin.GET("/:id", handler.get)
	admin.PUT("/:id", handler.update)
	admin.DELETE("/:id", handler.remove)
}

func (h *ServiceHandler) browse(c echo.Context) error {
	services, err := h.content.ListActiveServices(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	categories := collection.FacetValues(services, func(s domain.Service) string { return s.Category })

	filtered := collection.Filter(services,
		collection.FacetPredicate(c.QueryParam("category"), func(s domain.Service) string { return s.Category }),
	)

	return c.JSON(http.StatusOK, util.Envelope{
		"services": filtered,
		"facets":   util.Envelope{"categories": categories},
	})
}

func (h *ServiceHandler) getBySlug(c echo.Context) error {
	svc, err := h.content.GetServiceBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("service", svc))
}

func (h *ServiceHandler) list(c echo.Context) error {
	services, err := h.content.ListServices(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("services", services))
}

func (h *ServiceHandler) get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid service id"))
	}
	svc, err := h.content.GetService(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("service", svc))
}

func (h *ServiceHandler) create(c echo.Context) error {
	var svc domain.Service
	if err := c.Bind(&svc); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	stored, err := h.content.CreateService(c.Request().Context(), CurrentActor(c), &svc)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("service", stored))
}

func (h *ServiceHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid service id"))
	}
	var svc domain.Service
	if err := c.Bind(&svc); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	svc.ID = id
	stored, err := h.content.UpdateService(c.Request().Context(), CurrentActor(c), &svc)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("service", stored))
}

func (h *ServiceHandler) remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid service id"))
	}
	if err := h.content.DeleteService(c.Request().Context(), CurrentActor(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
