package handler

import (
	"net/http"

	"planta/internal/delivery/http/response"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler stores uploaded images (plant photos, article covers).
type UploadHandler struct {
	storage service.FileStorage
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(storage service.FileStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload handles a multipart image upload and returns the public URL of the
// stored file.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Request must carry a multipart 'file' field")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(domainerrors.ErrUploadFailed.WithDetails(err.Error()))
	}
	defer src.Close()

	url, err := h.storage.Store(c.Request().Context(), fileHeader.Filename, src)
	if err != nil {
		return errors.WithStack(domainerrors.ErrUploadFailed.WithDetails(err.Error()))
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "File uploaded successfully")
}
