package http

import (
	"github.com/gin-gonic/gin"

	"taskscribe/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All draft routes require an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	drafts := rg.Group("/drafts")
	{
		drafts.POST("", mw.Auth(), h.Create)
		drafts.GET("", mw.Auth(), h.List)
		drafts.GET("/:id", mw.Auth(), h.Detail)
		drafts.PATCH("/:id", mw.Auth(), h.Update)
	}
}
