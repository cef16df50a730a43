package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/domain"
	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type ChatHandler struct {
	chat *service.ChatService
}

func RegisterChat(e *echo.Echo, chat *service.ChatService) {
	handler := &ChatHandler{chat: chat}
	e.POST("/api/v1/chat", handler.converse)
}

func (h *ChatHandler) converse(c echo.Context) error {
	var req struct {
		Messages  []domain.ChatMessage `json:"messages"`
		SessionID string               `json:"session_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	reply, err := h.chat.Converse(c.Request().Context(), req.SessionID, req.Messages)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, reply)
}
