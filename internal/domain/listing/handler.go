package listing

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

// ListMine handles GET /api/v1/listings/mine
func (h *Handler) ListMine(c *gin.Context) {
	listings, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list listings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"listings": listings})
}

// Get handles GET /api/v1/listings/:id. Only the owner sees a listing in draft status.
func (h *Handler) Get(c *gin.Context) {
	l, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err == nil && l.Status == StatusDraft && l.OwnerID != c.GetInt64("user_id") {
		err = ErrNotFound
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load listing")
		return
	}
	response.Success(c, http.StatusOK, l)
}
