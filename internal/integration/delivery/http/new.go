package http

import (
	"github.com/gin-gonic/gin"

	"taskscribe/internal/integration"
	"taskscribe/pkg/log"
)

// Handler is the public interface for the integration HTTP delivery layer.
type Handler interface {
	Status(c *gin.Context)
	Connect(c *gin.Context)
	Callback(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc integration.UseCase
}

// New creates a new HTTP handler for tracker connections.
func New(l log.Logger, uc integration.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
