package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/collection"
	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type CountryHandler struct {
	catalog *service.CatalogService
}

func RegisterCountries(e *echo.Echo, catalog *service.CatalogService, guard echo.MiddlewareFunc) {
	handler := &CountryHandler{catalog: catalog}

	public := e.Group("/api/v1/countries")
	public.GET("", handler.browse)
	public.GET("/:slug", handler.getBySlug)
	public.GET("/:slug/destinations", handler.listDestinations)

	admin := e.Group("/api/v1/admin/countries", guard)
	admin.GET("", handler.list)
	admin.GET("/options", handler.options)
	admin.POST("", handler.create)
	admin.GET("/:id", handler.get)
	admin.PUT("/:id", handler.update)
	admin.DELETE("/:id", handler.remove)
}

func (h *CountryHandler) browse(c echo.Context) error {
	countries, err := h.catalog.ListActiveCountries(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	regions := collection.FacetValues(countries, func(country domain.Country) string { return country.Region })

	filtered := collection.Filter(countries,
		collection.TextPredicate(c.QueryParam("q"), func(country domain.Country) []string {
			return []string{country.Name, country.Summary}
		}),
		collection.FacetPredicate(c.QueryParam("region"), func(country domain.Country) string { return country.Region }),
	)

	page, size := pageParams(c)
	result := collection.Paginate(filtered, page, size)

	return c.JSON(http.StatusOK, util.Envelope{
		"countries": result,
		"facets": util.Envelope{
			"regions": regions,
		},
	})
}

func (h *CountryHandler) getBySlug(c echo.Context) error {
	country, err := h.catalog.GetCountryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("country", country))
}

func (h *CountryHandler) listDestinations(c echo.Context) error {
	destinations, err := h.catalog.ListActiveDestinationsByCountry(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("destinations", destinations))
}

func (h *CountryHandler) list(c echo.Context) error {
	countries, err := h.catalog.ListCountries(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("countries", countries))
}

func (h *CountryHandler) options(c echo.Context) error {
	options, err := h.catalog.CountryOptions(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("options", options))
}

func (h *CountryHandler) get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid country id"))
	}
	country, err := h.catalog.GetCountry(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("country", country))
}

func (h *CountryHandler) create(c echo.Context) error {
	var country domain.Country
	if err := c.Bind(&country); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	stored, err := h.catalog.CreateCountry(c.Request().Context(), CurrentActor(c), &country)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("country", stored))
}

func (h *CountryHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid country id"))
	}
	var country domain.Country
	if err := c.Bind(&country); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	country.ID = id
	stored, err := h.catalog.UpdateCountry(c.Request().Context(), CurrentActor(c), &country)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("country", stored))
}

func (h *CountryHandler) remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid country id"))
	}
	if err := h.catalog.DeleteCountry(c.Request().Context(), CurrentActor(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
