package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/collection"
	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type DealHandler struct {
	content *service.ContentService
}

func RegisterDeals(e *echo.Echo, content *service.ContentService, guard echo.MiddlewareFunc) {
	handler := &DealHandler{content: content}

	public := e.Group("/api/v1/deals")
	public.GET("", handler.browse)
	public.GET("/:slug", handler.getBySlug)

	admin := e.Group("/api/v1/admin/deals", guard)
	admin.GET("", handler.list)
	admin.POST("", handler.create)
	admin.GET("/:id", handler.get)
	admin.PUT("/:id", handler.update)
	admin.DELETE("/:id", handler.remove)
}

func (h *DealHandler) browse(c echo.Context) error {
	deals, err := h.content.ListActiveDeals(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	categories := collection.FacetValues(deals, func(d domain.Deal) string { return d.Category })

	filtered := collection.Filter(deals,
		collection.TextPredicate(c.QueryParam("q"), func(d domain.Deal) []string {
			return []string{d.Title, d.ShortDescription}
		}),
		collection.FacetPredicate(c.QueryParam("category"), func(d domain.Deal) string { return d.Category }),
	)

	page, size := pageParams(c)
	result := collection.Paginate(filtered, page, size)

	return c.JSON(http.StatusOK, util.Envelope{
		"deals":  result,
		"facets": util.Envelope{"categories": categories},
	})
}

func (h *DealHandler) getBySlug(c echo.Context) error {
	deal, err := h.content.GetDealBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("deal", deal))
}

func (h *DealHandler) list(c echo.Context) error {
	deals, err := h.content.ListDeals(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("deals", deals))
}

func (h *DealHandler) get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid deal id"))
	}
	deal, err := h.content.GetDeal(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("deal", deal))
}

func (h *DealHandler) create(c echo.Context) error {
	var deal domain.Deal
	if err := c.Bind(&deal); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	stored, err := h.content.CreateDeal(c.Request().Context(), CurrentActor(c), &deal)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("deal", stored))
}

func (h *DealHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid deal id"))
	}
	var deal domain.Deal
	if err := c.Bind(&deal); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	deal.ID = id
	stored, err := h.content.UpdateDeal(c.Request().Context(), CurrentActor(c), &deal)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("deal", stored))
}

func (h *DealHandler) remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid deal id"))
	}
	if err := h.content.DeleteDeal(c.Request().Context(), CurrentActor(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
