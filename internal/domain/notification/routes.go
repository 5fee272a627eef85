package notification

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	notifs := rg.Group("/notifications")
	{
		notifs.GET("", h.GetNotifications)
		notifs.PATCH("/:id/read", h.MarkAsRead)
	}
}

// RegisterWSRoutes mounts the WebSocket endpoint; the group must carry
// query-token authentication.
func (h *Handler) RegisterWSRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", h.HandleWebSocket)
}
