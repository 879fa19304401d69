package http

import (
	"github.com/gin-gonic/gin"

	"taskscribe/internal/submission"
	"taskscribe/pkg/log"
)

// Handler is the public interface for the submission HTTP delivery layer.
type Handler interface {
	Submit(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc submission.UseCase
}

// New creates a new HTTP handler for the submission domain.
func New(l log.Logger, uc submission.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
