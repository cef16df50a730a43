package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

// ShowcaseHandler serves the home page surfaces: hero slides, testimonials
// and the aggregated featured section.
type ShowcaseHandler struct {
	catalog *service.CatalogService
	content *service.ContentService
}

func RegisterShowcase(e *echo.Echo, catalog *service.CatalogService, content *service.ContentService, guard echo.MiddlewareFunc) {
	handler := &ShowcaseHandler{catalog: catalog, content: content}

	e.GET("/api/v1/hero-slides", handler.listActiveSlides)
	e.GET("/api/v1/testimonials", handler.listActiveTestimonials)
	e.GET("/api/v1/featured", handler.featured)

	slides := e.Group("/api/v1/admin/hero-slides", guard)
	slides.GET("", handler.listSlides)
	slides.POST("", handler.createSlide)
	slides.GET("/:id", handler.getSlide)
	slides.PUT("/:id", handler.updateSlide)
	slides.DELETE("/:id", handler.removeSlide)

	testimonials := e.Group("/api/v1/admin/testimonials", guard)
	testimonials.GET("", handler.listTestimonials)
	testimonials.POST("", handler.createTestimonial)
	testimonials.GET("/:id", handler.getTestimonial)
	testimonials.PUT("/:id", handler.updateTestimonial)
	testimonials.DELETE("/:id", handler.removeTestimonial)
}

func (h *ShowcaseHandler) listActiveSlides(c echo.Context) error {
	slides, err := h.content.ListActiveHeroSlides(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("hero_slides", slides))
}

func (h *ShowcaseHandler) listActiveTestimonials(c echo.Context) error {
	testimonials, err := h.content.ListActiveTestimonials(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("testimonials", testimonials))
}

// featured gathers the flagged rows of every showcased type in one call,
// so the home page renders off a single request.
func (h *ShowcaseHandler) featured(c echo.Context) error {
	ctx := c.Request().Context()

	destinations, err := h.catalog.ListActiveDestinations(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	packages, err := h.catalog.ListActivePackages(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	deals, err := h.content.ListActiveDeals(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	countries, err := h.catalog.ListActiveCountries(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}

	featuredDestinations := make([]domain.Destination, 0)
	for _, d := range destinations {
		if d.Featured {
			featuredDestinations = append(featuredDestinations, d)
		}
	}
	featuredPackages := make([]domain.Package, 0)
	for _, p := range packages {
		if p.Featured {
			featuredPackages = append(featuredPackages, p)
		}
	}
	featuredDeals := make([]domain.Deal, 0)
	for _, d := range deals {
		if d.Featured {
			featuredDeals = append(featuredDeals, d)
		}
	}
	featuredCountries := make([]domain.Country, 0)
	for _, co := range countries {
		if co.Featured {
			featuredCountries = append(featuredCountries, co)
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": featuredDestinations,
		"packages":     featuredPackages,
		"deals":        featuredDeals,
		"countries":    featuredCountries,
	})
}

func (h *ShowcaseHandler) listSlides(c echo.Context) error {
	slides, err := h.content.ListHeroSlides(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("hero_slides", slides))
}

func (h *ShowcaseHandler) getSlide(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid hero slide id"))
	}
	slide, err := h.content.GetHeroSlide(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("hero_slide", slide))
}

func (h *ShowcaseHandler) createSlide(c echo.Context) error {
	var slide domain.HeroSlide
	if err := c.Bind(&slide); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	stored, err := h.content.CreateHeroSlide(c.Request().Context(), CurrentActor(c), &slide)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("hero_slide", stored))
}

func (h *ShowcaseHandler) updateSlide(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid hero slide id"))
	}
	var slide domain.HeroSlide
	if err := c.Bind(&slide); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	slide.ID = id
	stored, err := h.content.UpdateHeroSlide(c.Request().Context(), CurrentActor(c), &slide)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("hero_slide", stored))
}

func (h *ShowcaseHandler) removeSlide(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid hero slide id"))
	}
	if err := h.content.DeleteHeroSlide(c.Request().Context(), CurrentActor(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ShowcaseHandler) listTestimonials(c echo.Context) error {
	testimonials, err := h.content.ListTestimonials(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("testimonials", testimonials))
}

func (h *ShowcaseHandler) getTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid testimonial id"))
	}
	tst, err := h.content.GetTestimonial(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("testimonial", tst))
}

func (h *ShowcaseHandler) createTestimonial(c echo.Context) error {
	var tst domain.Testimonial
	if err := c.Bind(&tst); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	stored, err := h.content.CreateTestimonial(c.Request().Context(), CurrentActor(c), &tst)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("testimonial", stored))
}

func (h *ShowcaseHandler) updateTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid testimonial id"))
	}
	var tst domain.Testimonial
	if err := c.Bind(&tst); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	tst.ID = id
	stored, err := h.content.UpdateTestimonial(c.Request().Context(), CurrentActor(c), &tst)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("testimonial", stored))
}

func (h *ShowcaseHandler) removeTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid testimonial id"))
	}
	if err := h.content.DeleteTestimonial(c.Request().Context(), CurrentActor(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
