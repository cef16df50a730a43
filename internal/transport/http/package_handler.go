package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/collection"
	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type PackageHandler struct {
	catalog *service.CatalogService
}

func RegisterPackages(e *echo.Echo, catalog *service.CatalogService, guard echo.MiddlewareFunc) {
	handler := &PackageHandler{catalog: catalog}

	public := e.Group("/api/v1/packages")
	public.GET("", handler.browse)
	public.GET("/:slug", handler.getBySlug)

	admin := e.Group("/api/v1/admin/packages", guard)
	admin.GET("", handler.list)
	admin.POST("", handler.create)
	admin.GET("/:id", handler.get)
	admin.PUT("/:id", handler.update)
	admin.DELETE("/:id", handler.remove)
}

// browse filters on the denormalized country snapshot and the category
// facet; both conditions apply together.
func (h *PackageHandler) browse(c echo.Context) error {
	packages, err := h.catalog.ListActivePackages(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	countries := collection.FacetValues(packages, func(p domain.Package) string { return p.Country })
	categories := collection.FacetValues(packages, func(p domain.Package) string { return p.Category })

	filtered := collection.Filter(packages,
		collection.TextPredicate(c.QueryParam("q"), func(p domain.Package) []string {
			return []string{p.Name, p.ShortDescription}
		}),
		collection.FacetPredicate(c.QueryParam("country"), func(p domain.Package) string { return p.Country }),
		collection.FacetPredicate(c.QueryParam("category"), func(p domain.Package) string { return p.Category }),
	)

	page, size := pageParams(c)
	result := collection.Paginate(filtered, page, size)

	return c.JSON(http.StatusOK, util.Envelope{
		"packages": result,
		"facets": util.Envelope{
			"countries":  countries,
			"categories": categories,
		},
	})
}

func (h *PackageHandler) getBySlug(c echo.Context) error {
	pkg, err := h.catalog.GetPackageBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("package", pkg))
}

func (h *PackageHandler) list(c echo.Context) error {
	packages, err := h.catalog.ListPackages(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("packages", packages))
}

func (h *PackageHandler) get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid package id"))
	}
	pkg, err := h.catalog.GetPackage(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("package", pkg))
}

func (h *PackageHandler) create(c echo.Context) error {
	var pkg domain.Package
	if err := c.Bind(&pkg); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	stored, err := h.catalog.CreatePackage(c.Request().Context(), CurrentActor(c), &pkg)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("package", stored))
}

func (h *PackageHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid package id"))
	}
	var pkg domain.Package
	if err := c.Bind(&pkg); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	pkg.ID = id
	stored, err := h.catalog.UpdatePackage(c.Request().Context(), CurrentActor(c), &pkg)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("package", stored))
}

func (h *PackageHandler) remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid package id"))
	}
	if err := h.catalog.DeletePackage(c.Request().Context(), CurrentActor(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
