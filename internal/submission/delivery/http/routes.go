package http

import (
	"github.com/gin-gonic/gin"

	"taskscribe/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/submit", mw.Auth(), h.Submit)
	}
}
