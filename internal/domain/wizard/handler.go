package wizard

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"venuehub/internal/domain/draft"
	"venuehub/internal/domain/flow"
	"venuehub/internal/domain/listing"
	"venuehub/internal/domain/upload"
	"venuehub/internal/pkg/response"
)

// maxAnswerBytes caps a single answer body.
const maxAnswerBytes = 16 << 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListCategories handles GET /api/v1/categories
func (h *Handler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Categories())
}

// Start handles POST /api/v1/wizards
// @Summary Start the listing wizard for a category
// @Tags Wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response{data=View}
// @Router /wizards [post]
func (h *Handler) Start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "category is required")
		return
	}
	v, err := h.service.Start(c.GetInt64("user_id"), flow.Category(req.Category))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v)
}

func (h *Handler) Get(c *gin.Context) {
	v, err := h.service.Get(c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// SetAnswer handles PUT /api/v1/wizards/:id/answers/:step. The body is the
// step's answer object.
func (h *Handler) SetAnswer(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxAnswerBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Answer body is too large")
			return
		}
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	v, err := h.service.SetAnswer(c.GetInt64("user_id"), c.Param("id"), flow.StepKey(c.Param("step")), raw)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// AddPhotos handles POST /api/v1/wizards/:id/photos (multipart field "files").
func (h *Handler) AddPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Expected multipart form")
		return
	}
	v, err := h.service.AddPhotos(c.Request.Context(), c.GetInt64("user_id"), c.Param("id"), form.File["files"])
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// Advance handles POST /api/v1/wizards/:id/advance. Completing the last
// step answers 201 with the created listing.
func (h *Handler) Advance(c *gin.Context) {
	out, err := h.service.Advance(c.Request.Context(), c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	status := http.StatusOK
	if out.Listing != nil {
		status = http.StatusCreated
	}
	response.Success(c, status, out)
}

func (h *Handler) Retreat(c *gin.Context) {
	out, err := h.service.Retreat(c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// SaveDraft handles POST /api/v1/wizards/:id/draft
func (h *Handler) SaveDraft(c *gin.Context) {
	summary, err := h.service.SaveDraft(c.Request.Context(), c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// ListDrafts handles GET /api/v1/drafts
func (h *Handler) ListDrafts(c *gin.Context) {
	drafts, err := h.service.ListDrafts(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"drafts": drafts})
}

// ResumeDraft handles POST /api/v1/drafts/:id/resume
func (h *Handler) ResumeDraft(c *gin.Context) {
	v, err := h.service.Resume(c.Request.Context(), c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// DeleteDraft handles DELETE /api/v1/drafts/:id
func (h *Handler) DeleteDraft(c *gin.Context) {
	if err := h.service.DeleteDraft(c.Request.Context(), c.GetInt64("user_id"), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, flow.ErrUnknownCategory):
		response.Error(c, http.StatusNotFound, "UNKNOWN_CATEGORY", err.Error())
	case errors.Is(err, ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Wizard session not found")
	case errors.Is(err, draft.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Draft not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Draft belongs to another user")
	case errors.Is(err, ErrOperationInFlight):
		response.Error(c, http.StatusConflict, "OPERATION_IN_FLIGHT", err.Error())
	case errors.Is(err, ErrStepNotReady):
		response.Error(c, http.StatusUnprocessableEntity, "STEP_NOT_READY", err.Error())
	case errors.Is(err, ErrInvalidAnswerShape), errors.Is(err, ErrStepNotInFlow):
		response.Error(c, http.StatusBadRequest, "INVALID_ANSWER", err.Error())
	case errors.Is(err, draft.ErrInvalidID):
		response.Error(c, http.StatusBadRequest, "INVALID_ID", err.Error())
	case errors.Is(err, listing.ErrTitleMissing):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	default:
		upload.WriteError(c, err)
	}
}
