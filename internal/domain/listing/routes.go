package listing

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	listings := rg.Group("/listings")
	{
		listings.GET("/mine", h.ListMine)
		listings.GET("/:id", h.Get)
	}
}
