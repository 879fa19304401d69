package http

import (
	"github.com/gin-gonic/gin"

	"taskscribe/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notes := rg.Group("/notes")
	{
		notes.POST("/segment", mw.Auth(), h.Segment)
		notes.POST("/extract", mw.Auth(), h.Extract)
		notes.GET("/autocomplete", mw.Auth(), h.Autocomplete)
		notes.GET("/title", mw.Auth(), h.Title)
	}
}
