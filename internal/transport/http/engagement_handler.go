package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type EngagementHandler struct {
	engagement *service.EngagementService
	content    *service.ContentService
}

func RegisterEngagement(e *echo.Echo, engagement *service.EngagementService, content *service.ContentService, guard echo.MiddlewareFunc) {
	handler := &EngagementHandler{engagement: engagement, content: content}

	e.POST("/api/v1/contact", handler.submitContact)
	e.POST("/api/v1/newsletter", handler.subscribe)
	e.GET("/api/v1/deals-popup", handler.popup)

	admin := e.Group("/api/v1/admin", guard)
	admin.GET("/contact-submissions", handler.listContacts)
	admin.GET("/newsletter", handler.listSubscribers)

	popups := e.Group("/api/v1/admin/deals-popup", guard)
	popups.GET("", handler.listPopups)
	popups.POST("", handler.createPopup)
	popups.GET("/:id", handler.getPopup)
	popups.PUT("/:id", handler.updatePopup)
	popups.DELETE("/:id", handler.removePopup)
}

func (h *EngagementHandler) submitContact(c echo.Context) error {
	var submission domain.ContactSubmission
	if err := c.Bind(&submission); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	stored, err := h.engagement.SubmitContact(c.Request().Context(), &submission)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("submission", stored))
}

func (h *EngagementHandler) subscribe(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	created, err := h.engagement.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return writeServiceError(c, err)
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, util.Envelope{"subscribed": true})
}

// popup reads the widget's last-seen timestamp from the query string as
// RFC 3339. An unparsable value is treated as never seen.
func (h *EngagementHandler) popup(c echo.Context) error {
	var lastSeen *time.Time
	if raw := strings.TrimSpace(c.QueryParam("last_seen")); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			lastSeen = &parsed
		}
	}
	decision, err := h.engagement.PopupForVisitor(c.Request().Context(), lastSeen)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, decision)
}

func (h *EngagementHandler) listContacts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	submissions, err := h.engagement.ListContacts(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("submissions", submissions))
}

func (h *EngagementHandler) listSubscribers(c echo.Context) error {
	subscribers, err := h.engagement.ListSubscribers(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("subscribers", subscribers))
}

func (h *EngagementHandler) listPopups(c echo.Context) error {
	popups, err := h.content.ListPopups(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("popups", popups))
}

func (h *EngagementHandler) getPopup(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid popup id"))
	}
	popup, err := h.content.GetPopup(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("popup", popup))
}

func (h *EngagementHandler) createPopup(c echo.Context) error {
	var popup domain.DealsPopup
	if err := c.Bind(&popup); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	stored, err := h.content.CreatePopup(c.Request().Context(), CurrentActor(c), &popup)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("popup", stored))
}

func (h *EngagementHandler) updatePopup(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid popup id"))
	}
	var popup domain.DealsPopup
	if err := c.Bind(&popup); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	popup.ID = id
	stored, err := h.content.UpdatePopup(c.Request().Context(), CurrentActor(c), &popup)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("popup", stored))
}

func (h *EngagementHandler) removePopup(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid popup id"))
	}
	if err := h.content.DeletePopup(c.Request().Context(), CurrentActor(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
