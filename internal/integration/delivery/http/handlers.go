package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskscribe/internal/middleware"
	"taskscribe/internal/model"
	pkgErrors "taskscribe/pkg/errors"
	"taskscribe/pkg/response"
)

// Status godoc
// @Summary     Integration status
// @Description Reports which issue trackers the caller has connected.
// @Tags        Integrations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statusResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/integrations/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Status(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "integration.http.Status: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatusResp(output))
}

// Connect godoc
// @Summary     Start tracker OAuth flow
// @Description Returns the provider authorization URL the client should redirect the user to.
// @Tags        Integrations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       platform path string true "Tracker platform (linear or jira)"
// @Success     200 {object} connectResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/integrations/{platform}/connect [GET]
func (h *handler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	platform := model.Platform(c.Param("platform"))
	output, err := h.uc.ConnectURL(ctx, sc, platform)
	if err != nil {
		h.l.Errorf(ctx, "integration.http.Connect: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, connectResp{URL: output.URL})
}

// Callback godoc
// @Summary     Finish tracker OAuth flow
// @Description Exchanges the authorization code and stores the token pair.
// @Tags        Integrations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       platform path  string true "Tracker platform (linear or jira)"
// @Param       code     query string true "Authorization code"
// @Param       state    query string true "OAuth state issued by connect"
// @Success     200 {object} callbackResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Provider rejected the code"
// @Router      /api/v1/integrations/{platform}/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	platform := model.Platform(c.Param("platform"))
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "code and state are required"), nil)
		return
	}

	if err := h.uc.HandleCallback(ctx, sc, platform, code, state); err != nil {
		h.l.Errorf(ctx, "integration.http.Callback: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, callbackResp{Platform: string(platform), Connected: true})
}
