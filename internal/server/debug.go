package server

import (
	"net/http"

	"github.com/nancyzera/jurassic-game/internal/engine"

	"github.com/klauspost/compress/gzhttp"
)

// DebugHandler exposes read-only session state.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /debug/sessions", gzhttp.GzipHandler(debugCORS(h.handleListSessions)))
	mux.Handle("GET /debug/sessions/{id}", gzhttp.GzipHandler(debugCORS(h.handleSession)))
	mux.Handle("GET /debug/hub", gzhttp.GzipHandler(debugCORS(h.handleHub)))
}

// /debug/sessions - every running session, sorted by id.
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Sessions())
}

// /debug/sessions/{id} - one session, including its pending win.
func (h *DebugHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	st, ok := h.Service.SessionStatus(r.PathValue("id"))
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, st)
}

func (h *DebugHandler) handleHub(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]int{
		"sessions":    h.Service.SessionCount(),
		"subscribers": h.Service.Hub.SubscriberCount(),
	})
}

// The local debug page is served from file://, so allow any origin.
func debugCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next(w, r)
	}
}
