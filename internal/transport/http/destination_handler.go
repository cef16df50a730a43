package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/collection"
	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type DestinationHandler struct {
	catalog *service.CatalogService
}

func RegisterDestinations(e *echo.Echo, catalog *service.CatalogService, guard echo.MiddlewareFunc) {
	handler := &DestinationHandler{catalog: catalog}

	public := e.Group("/api/v1/destinations")
	public.GET("", handler.browse)
	public.GET("/:country/:slug", handler.getBySlug)

	admin := e.Group("/api/v1/admin/destinations", guard)
	admin.GET("", handler.list)
	admin.GET("/options", handler.options)
	admin.POST("", handler.create)
	admin.GET("/:id", handler.get)
	admin.PUT("/:id", handler.update)
	admin.DELETE("/:id", handler.remove)
}

// browse is the public grid: free-text search plus tag facet, paginated
// nine to a page. Facet values for the filter bar ride along with every
// page so the widget needs a single request.
func (h *DestinationHandler) browse(c echo.Context) error {
	ctx := c.Request().Context()

	destinations, err := h.catalog.ListActiveDestinations(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}

	if countrySlug := strings.TrimSpace(c.QueryParam("country")); countrySlug != "" {
		country, err := h.catalog.GetCountryBySlug(ctx, countrySlug)
		if err != nil {
			return writeServiceError(c, err)
		}
		scoped := destinations[:0:0]
		for _, d := range destinations {
			if d.CountryID == country.ID {
				scoped = append(scoped, d)
			}
		}
		destinations = scoped
	}

	allTags := make([]string, 0, len(destinations))
	for _, d := range destinations {
		allTags = append(allTags, d.Tags...)
	}
	tags := collection.FacetValues(allTags, func(s string) string { return s })

	var tagPred func(domain.Destination) bool
	if tag := strings.TrimSpace(c.QueryParam("tag")); tag != "" && !strings.EqualFold(tag, "all") {
		tagPred = func(d domain.Destination) bool {
			for _, candidate := range d.Tags {
				if strings.EqualFold(candidate, tag) {
					return true
				}
			}
			return false
		}
	}

	filtered := collection.Filter(destinations,
		collection.TextPredicate(c.QueryParam("q"), func(d domain.Destination) []string {
			return []string{d.Name, d.Summary}
		}),
		tagPred,
	)

	page, size := pageParams(c)
	result := collection.Paginate(filtered, page, size)

	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": result,
		"facets":       util.Envelope{"tags": tags},
	})
}

func (h *DestinationHandler) getBySlug(c echo.Context) error {
	dest, err := h.catalog.GetDestinationBySlug(c.Request().Context(), c.Param("country"), c.Param("slug"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("destination", dest))
}

func (h *DestinationHandler) list(c echo.Context) error {
	destinations, err := h.catalog.ListDestinations(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("destinations", destinations))
}

func (h *DestinationHandler) options(c echo.Context) error {
	options, err := h.catalog.DestinationOptions(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("options", options))
}

func (h *DestinationHandler) get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}
	dest, err := h.catalog.GetDestination(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("destination", dest))
}

func (h *DestinationHandler) create(c echo.Context) error {
	var dest domain.Destination
	if err := c.Bind(&dest); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	stored, err := h.catalog.CreateDestination(c.Request().Context(), CurrentActor(c), &dest)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("destination", stored))
}

func (h *DestinationHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}
	var dest domain.Destination
	if err := c.Bind(&dest); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	dest.ID = id
	stored, err := h.catalog.UpdateDestination(c.Request().Context(), CurrentActor(c), &dest)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("destination", stored))
}

func (h *DestinationHandler) remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}
	if err := h.catalog.DeleteDestination(c.Request().Context(), CurrentActor(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
