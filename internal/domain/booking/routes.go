package booking

import "github.com/gin-gonic/gin"

// RegisterRoutes expects an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quotes", h.CreateQuote)
	rg.GET("/bookings/mine", h.GetMyBookings)

	reservations := rg.Group("/reservations")
	{
		reservations.POST("", h.StartReservation)
		reservations.GET("/:id", h.GetReservation)
		reservations.PUT("/:id/details", h.UpdateDetails)
		reservations.POST("/:id/submit", h.Submit)
		reservations.PUT("/:id/payment-method", h.SelectPayment)
		reservations.POST("/:id/edit", h.Edit)
		reservations.POST("/:id/confirm", h.Confirm)
		reservations.POST("/:id/retry", h.Retry)
		reservations.DELETE("/:id", h.Close)
	}
}
