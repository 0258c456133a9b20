package chat

import (
	"encoding/json"
	"net/http"

	"github.com/creativedrywall/chat-assistant/pkg/logging"
)

// Handler owns the HTTP surface of the chat endpoint: method dispatch, CORS
// headers, JSON decode, and the outermost catch-all. Everything else happens
// in the Service.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// HandleChat serves POST and OPTIONS for the chat endpoint. The CORS headers
// go on every response, the widget runs cross-origin.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodPost:
		// handled below
	default:
		h.writeEnvelope(w, http.StatusMethodNotAllowed, Envelope{Success: false, Message: "Method not allowed"})
		return
	}

	// Outermost safety net: a panic anywhere in the pipeline becomes the
	// static fallback, never a raw 5xx to the widget.
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("chat: recovered from panic", "panic", rec)
			h.writeEnvelope(w, http.StatusOK, Envelope{Success: true, Message: h.service.Fallback()})
		}
	}()

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeEnvelope(w, http.StatusBadRequest, Envelope{Success: false, Message: "Invalid JSON"})
		return
	}

	status, env := h.service.Respond(r.Context(), req)
	h.writeEnvelope(w, status, env)
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		h.logger.Error("chat: failed to write envelope", "error", err)
	}
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
