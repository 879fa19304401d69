package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "taskscribe/pkg/errors"
)

// processSegmentReq binds and validates the segment request body.
func (h *handler) processSegmentReq(c *gin.Context) (segmentReq, error) {
	var req segmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, nil
}

// processExtractReq binds and validates the extract request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, nil
}

// processTextQuery reads the required "text" query parameter.
func (h *handler) processTextQuery(c *gin.Context) (string, error) {
	text := strings.TrimSpace(c.Query("text"))
	if text == "" {
		return "", pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	return text, nil
}
