package http

import (
	"strings"

	"sommelier-srv/internal/dialogue"
)

const welcomeMessage = "Welcome to the SipNSavor API! Use /chat to interact with the assistant."

type chatReq struct {
	Query  string `json:"query"`
	UserID string `json:"user_id"`
}

func (r chatReq) toInput() dialogue.ReplyInput {
	return dialogue.ReplyInput{
		UserID: strings.TrimSpace(r.UserID),
		Query:  strings.TrimSpace(r.Query),
	}
}

type chatResp struct {
	Response string `json:"response"`
}

type errorResp struct {
	Error string `json:"error"`
}

type welcomeResp struct {
	Message string `json:"message"`
}

func (h *handler) newChatResp(o dialogue.ReplyOutput) chatResp {
	return chatResp{Response: o.Reply}
}

func (h *handler) newErrorResp(err error) errorResp {
	return errorResp{Error: h.mapError(err)}
}
