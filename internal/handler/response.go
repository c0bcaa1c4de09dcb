package handler

import "github.com/actuallystonmai/jobrec/internal/widget"

type StateResponse struct {
	SessionID string       `json:"session_id"`
	State     widget.State `json:"state"`
	ShowEmpty bool         `json:"show_empty"`
}

type LivenessResponse struct {
	Status         string `json:"status"`
	ActiveSessions int    `json:"active_sessions"`
	Store          string `json:"store"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
