package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskscribe/internal/middleware"
	pkgErrors "taskscribe/pkg/errors"
	"taskscribe/pkg/response"
)

// Submit godoc
// @Summary     Submit tasks to a tracker
// @Description Creates one issue per task on the chosen platform. Failed items are skipped; the response reports what landed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body submitReq true "Tasks and destination"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "No issues could be created"
// @Router      /api/v1/tasks/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body"), nil)
		return
	}

	output, err := h.uc.Submit(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "submission.http.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}
