package middleware

import (
	"github.com/gin-gonic/gin"

	"taskscribe/internal/model"
)

const scopeKey = "scope"

// SetScope stores the resolved caller identity on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the caller identity placed by the Auth middleware.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
