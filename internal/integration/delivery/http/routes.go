package http

import (
	"github.com/gin-gonic/gin"

	"taskscribe/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	integrations := rg.Group("/integrations")
	{
		integrations.GET("/status", mw.Auth(), h.Status)
		integrations.GET("/:platform/connect", mw.Auth(), h.Connect)
		integrations.GET("/:platform/callback", mw.Auth(), h.Callback)
	}
}
