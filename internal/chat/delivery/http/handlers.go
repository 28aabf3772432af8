package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"digaxy-assistant/internal/chat"
	"digaxy-assistant/internal/model"
	"digaxy-assistant/pkg/response"
)

// Step godoc
// @Summary     Advance the intake conversation
// @Description Applies one user message to the session's dialogue state and returns the assistant's reply. Omit session_id on the first turn to start a new conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body stepReq true "User message"
// @Success     200 {object} stepResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Step(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStepReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Step(ctx, h.scope(req.SessionID), req.toInput())
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Step: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newStepResp(output))
}

// Reset godoc
// @Summary     Restart a conversation
// @Description Discards everything collected in the session and returns the dialogue to the greeting state.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/{session_id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("session_id")

	if err := h.uc.Reset(ctx, h.scope(sessionID)); err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *handler) scope(sessionID string) model.Scope {
	return model.Scope{SessionID: sessionID}
}
