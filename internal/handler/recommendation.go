package handler

import (
	"errors"
	"net/http"

	"github.com/actuallystonmai/jobrec/internal/domain"
	"github.com/actuallystonmai/jobrec/internal/widget"
)

// GET /
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	view := widget.NewView(h.service.View(r.Context(), id))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(w, view); err != nil {
		h.logger.Printf("[handler] render page for session %s: %v", id, err)
	}
}

// POST /recommend
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_form", "Invalid form body")
		return
	}
	id := sessionID(w, r)

	_, err := h.service.Submit(r.Context(), id, r.PostForm.Get("skills"))
	if err != nil && !isWidgetError(err) {
		h.logger.Printf("[handler] submit for session %s: %v", id, err)
	}

	// the outcome lives in the widget state; render it from there
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// GET /state
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	state := h.service.View(r.Context(), id)

	writeJSON(w, http.StatusOK, StateResponse{
		SessionID: id,
		State:     state,
		ShowEmpty: widget.ShowEmptyState(state),
	})
}

// GET /healthz
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	store := "ok"
	status := http.StatusOK
	if err := h.service.Ping(r.Context()); err != nil {
		h.logger.Printf("[handler] snapshot store ping: %v", err)
		store = "unavailable"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, LivenessResponse{
		Status:         http.StatusText(status),
		ActiveSessions: h.service.ActiveSessions(),
		Store:          store,
	})
}

// errors already shown to the user through the widget state
func isWidgetError(err error) bool {
	return domain.IsValidationError(err) ||
		domain.IsAPIError(err) ||
		domain.IsNetworkError(err) ||
		errors.Is(err, widget.ErrSuperseded)
}
