package http

import (
	"github.com/gin-gonic/gin"

	"taskscribe/internal/middleware"
	"taskscribe/pkg/response"
)

// Segment godoc
// @Summary     Segment a markdown note
// @Description Splits a markdown note into task candidates, one per "## " heading section.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body segmentReq true "Note markdown"
// @Success     200 {object} segmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notes/segment [POST]
func (h *handler) Segment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSegmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Segment(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "note.http.Segment: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSegmentResp(output, req.Platform))
}

// Extract godoc
// @Summary     Extract tasks or rewrite text
// @Description Sends note text to the LLM. Task mode returns structured tasks; style modes return rewritten prose.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body extractReq true "Note text and optional mode"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Extraction failed"
// @Router      /api/v1/notes/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "note.http.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Autocomplete godoc
// @Summary     Autocomplete note text
// @Description Returns a short continuation of the text at the cursor.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       text query string true "Text up to the cursor"
// @Success     200 {object} autocompleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notes/autocomplete [GET]
func (h *handler) Autocomplete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	text, err := h.processTextQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.Autocomplete(ctx, sc, text)
	if err != nil {
		h.l.Errorf(ctx, "note.http.Autocomplete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, autocompleteResp{Result: result})
}

// Title godoc
// @Summary     Generate a note title
// @Description Returns a 3-4 word title for the given content.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       text query string true "Note content"
// @Success     200 {object} titleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notes/title [GET]
func (h *handler) Title(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	text, err := h.processTextQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	title, err := h.uc.GenerateTitle(ctx, sc, text)
	if err != nil {
		h.l.Errorf(ctx, "note.http.Title: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, titleResp{Title: title})
}
