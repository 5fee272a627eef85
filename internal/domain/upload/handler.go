package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"venuehub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /api/v1/uploads (multipart field "files").
func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetInt64("user_id")

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Expected multipart form")
		return
	}

	urls, err := h.service.Ingest(c.Request.Context(), userID, form.File["files"])
	if err != nil {
		WriteError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"urls": urls})
}

// ListMy handles GET /api/v1/uploads
func (h *Handler) ListMy(c *gin.Context) {
	uploads, err := h.service.ListByUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list uploads")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"uploads": uploads})
}

// Delete handles DELETE /api/v1/uploads/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetInt64("user_id")); err != nil {
		WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// WriteError maps ingestion errors to the response envelope. Other handlers that accept
// images reuse it.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidMimeType),
		errors.Is(err, ErrNoFiles), errors.Is(err, ErrTooManyFiles):
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
	case errors.Is(err, ErrUploadNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Upload not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Upload failed")
	}
}
