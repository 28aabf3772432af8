package http

import (
	"digaxy-assistant/internal/chat"
)

// --- Request DTOs ---

type stepReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

func (r stepReq) toInput() chat.StepInput {
	return chat.StepInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type stepResp struct {
	SessionID string   `json:"session_id"`
	Reply     string   `json:"reply"`
	FollowUps []string `json:"follow_up,omitempty"`
	State     string   `json:"state"`
	Complete  bool     `json:"complete"`
}

func (h *handler) newStepResp(out chat.StepOutput) stepResp {
	return stepResp{
		SessionID: out.SessionID,
		Reply:     out.Reply,
		FollowUps: out.FollowUps,
		State:     out.State,
		Complete:  out.Complete,
	}
}
