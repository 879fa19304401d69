package http

import (
	"github.com/gin-gonic/gin"

	"taskscribe/internal/draft"
	"taskscribe/pkg/log"
)

// Handler is the public interface for the draft HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc draft.UseCase
}

// New creates a new HTTP handler for the draft domain.
func New(l log.Logger, uc draft.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
