package handler

import (
	"errors"
	"net/http"

	"github.com/actuallystonmai/jobrec/internal/domain"
	"github.com/google/uuid"
)

const sessionCookie = "jobrec_session"

// sessionID reads the session cookie, issuing a new one when it is missing
// or malformed.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// POST /session/end
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		writeError(w, http.StatusNotFound, "session_not_found", "No active session")
		return
	}

	err = h.service.End(r.Context(), c.Value)
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})

	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session_not_found", "No active session")
			return
		}
		h.logger.Printf("[handler] end session %s: %v", c.Value, err)
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
