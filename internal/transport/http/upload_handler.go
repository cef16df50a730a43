package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/service"
	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

type UploadHandler struct {
	uploads *service.UploadService
}

func RegisterUploads(e *echo.Echo, uploads *service.UploadService, guard echo.MiddlewareFunc) {
	handler := &UploadHandler{uploads: uploads}
	e.POST("/api/v1/admin/uploads", handler.uploadImage, guard)
}

func (h *UploadHandler) uploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("file upload required"))
	}
	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("unable to read upload"))
	}
	defer src.Close()

	result, err := h.uploads.UploadImage(c.Request().Context(), service.ImageUpload{
		Reader:      src,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("image", result))
}
