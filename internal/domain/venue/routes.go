package venue

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	venues := r.Group("/venues")
	{
		venues.GET("", h.List)
		venues.GET("/:id", h.Get)
	}
}
