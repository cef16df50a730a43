package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

// writeServiceError maps the service sentinels onto HTTP statuses. Anything
// unmapped is a 500 with a generic message; the real error is already in the
// request log.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrImageTooLarge),
		errors.Is(err, service.ErrImageUnsupportedType):
		return c.JSON(http.StatusUnprocessableEntity, util.Error(err.Error()))
	case errors.Is(err, service.ErrCountryNotFound),
		errors.Is(err, service.ErrDestinationNotFound),
		errors.Is(err, service.ErrPackageNotFound),
		errors.Is(err, service.ErrDealNotFound),
		errors.Is(err, service.ErrServiceNotFound),
		errors.Is(err, service.ErrHeroSlideNotFound),
		errors.Is(err, service.ErrTestimonialNotFound),
		errors.Is(err, service.ErrPopupNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrSlugConflict),
		errors.Is(err, service.ErrCountryInUse):
		return c.JSON(http.StatusConflict, util.Error(err.Error()))
	case errors.Is(err, service.ErrSearchQueryTooShort):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	case errors.Is(err, service.ErrChatUpstream):
		return c.JSON(http.StatusBadGateway, util.Error("assistant is unavailable, please try again"))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}

func parseID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// pageParams reads page/page_size with the public grid's nine-card default.
func pageParams(c echo.Context) (page, size int) {
	page, size = 1, 9
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 && v <= 100 {
		size = v
	}
	return page, size
}
