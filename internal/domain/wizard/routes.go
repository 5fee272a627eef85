package wizard

import "github.com/gin-gonic/gin"

// RegisterRoutes expects an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)

	wizards := rg.Group("/wizards")
	{
		wizards.POST("", h.Start)
		wizards.GET("/:id", h.Get)
		wizards.PUT("/:id/answers/:step", h.SetAnswer)
		wizards.POST("/:id/photos", h.AddPhotos)
		wizards.POST("/:id/advance", h.Advance)
		wizards.POST("/:id/retreat", h.Retreat)
		wizards.POST("/:id/draft", h.SaveDraft)
	}

	drafts := rg.Group("/drafts")
	{
		drafts.GET("", h.ListDrafts)
		drafts.POST("/:id/resume", h.ResumeDraft)
		drafts.DELETE("/:id", h.DeleteDraft)
	}
}
