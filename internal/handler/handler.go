package handler

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/actuallystonmai/jobrec/internal/service"
)

type Handler struct {
	service *service.Service
	page    *template.Template
	logger  *log.Logger
}

func NewHandler(svc *service.Service, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		service: svc,
		page:    widgetPage,
		logger:  logger,
	}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
