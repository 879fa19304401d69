package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "taskscribe/pkg/errors"
)

// processCreateReq binds and validates the create draft request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, nil
}

// processListReq binds the list drafts query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	return req, nil
}

// processUpdateReq binds the update draft request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	return req, nil
}
