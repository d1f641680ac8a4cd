package http

import (
	"net/http"

	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/utils"
)

// healthCheck is the liveness probe. It never touches dependencies.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Ok"))
}

// readiness reports 503 while the database is unreachable.
func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) {
	if h.storage != nil {
		if err := h.storage.Ping(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.readiness").Msg("database is not reachable")
			utils.WriteError(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	_, _ = utils.WriteJSON(w, map[string]string{"status": "ready"}, http.StatusOK)
}
