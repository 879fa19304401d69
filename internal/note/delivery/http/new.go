package http

import (
	"github.com/gin-gonic/gin"

	"taskscribe/internal/note"
	"taskscribe/pkg/log"
)

// Handler is the public interface for the note HTTP delivery layer.
type Handler interface {
	Segment(c *gin.Context)
	Extract(c *gin.Context)
	Autocomplete(c *gin.Context)
	Title(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc note.UseCase
}

// New creates a new HTTP handler for the note domain.
func New(l log.Logger, uc note.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
