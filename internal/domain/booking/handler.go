package booking

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"venuehub/internal/domain/venue"
	"venuehub/internal/pkg/response"
)

type BookingHistory interface {
	ListByUser(ctx context.Context, userID int64) ([]Booking, error)
}

type Handler struct {
	service *Service
	history BookingHistory
}

func NewHandler(service *Service, history BookingHistory) *Handler {
	return &Handler{service: service, history: history}
}

// CreateQuote handles POST /api/v1/quotes
// @Summary Price a booking request
// @Tags Bookings
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=Quote}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /quotes [post]
func (h *Handler) CreateQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	q, err := h.service.Quote(c.Request.Context(), req.toRequest())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, q)
}

// StartReservation handles POST /api/v1/reservations
func (h *Handler) StartReservation(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req StartReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "venue_id is required")
		return
	}

	res, err := h.service.Start(c.Request.Context(), userID, req.VenueID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) GetReservation(c *gin.Context) {
	res, err := h.service.Get(c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) UpdateDetails(c *gin.Context) {
	var req DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	res, err := h.service.UpdateDetails(c.GetInt64("user_id"), c.Param("id"), req.toRequest())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Submit(c *gin.Context) {
	res, err := h.service.Submit(c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) SelectPayment(c *gin.Context) {
	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	res, err := h.service.SelectPayment(c.GetInt64("user_id"), c.Param("id"), req.Method)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Edit(c *gin.Context) {
	res, err := h.service.Edit(c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Confirm handles POST /api/v1/reservations/:id/confirm. A failed backend
// call answers 502 with the reservation, now in the failed phase, as details.
func (h *Handler) Confirm(c *gin.Context) {
	res, err := h.service.Confirm(c.Request.Context(), c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrConfirmationFailed) {
			response.ErrorWithDetails(c, http.StatusBadGateway, "CONFIRMATION_FAILED", res.FailureReason, res)
			return
		}
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Retry(c *gin.Context) {
	res, err := h.service.Retry(c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Close(c *gin.Context) {
	if err := h.service.Close(c.GetInt64("user_id"), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"closed": true})
}

// GetMyBookings handles GET /api/v1/bookings/mine
func (h *Handler) GetMyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	list, err := h.history.ListByUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func writeError(c *gin.Context, err error) {
	var contactErr *ContactError
	switch {
	case errors.As(err, &contactErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contact details", contactErr.Fields)
	case errors.Is(err, ErrCapacityExceeded):
		response.Error(c, http.StatusBadRequest, "CAPACITY_EXCEEDED", err.Error())
	case errors.Is(err, ErrInvalidGuestCount):
		response.Error(c, http.StatusBadRequest, "INVALID_GUEST_COUNT", err.Error())
	case errors.Is(err, ErrDateInPast):
		response.Error(c, http.StatusBadRequest, "DATE_IN_PAST", err.Error())
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", err.Error())
	case errors.Is(err, ErrInvalidTimeRange):
		response.Error(c, http.StatusBadRequest, "INVALID_TIME_RANGE", err.Error())
	case errors.Is(err, ErrVenueUnpriced):
		response.Error(c, http.StatusBadRequest, "VENUE_UNPRICED", err.Error())
	case errors.Is(err, ErrPaymentMethodRequired):
		response.Error(c, http.StatusBadRequest, "PAYMENT_METHOD_REQUIRED", err.Error())
	case errors.Is(err, ErrInvalidPaymentMethod):
		response.Error(c, http.StatusBadRequest, "INVALID_PAYMENT_METHOD", err.Error())
	case errors.Is(err, ErrInvalidPhase):
		response.Error(c, http.StatusConflict, "INVALID_PHASE", err.Error())
	case errors.Is(err, ErrOperationInFlight):
		response.Error(c, http.StatusConflict, "OPERATION_IN_FLIGHT", err.Error())
	case errors.Is(err, venue.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
	case errors.Is(err, ErrReservationNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
