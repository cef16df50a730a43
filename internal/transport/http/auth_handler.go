package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}
	e.POST("/api/v1/admin/login", handler.login)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("session", result))
}
