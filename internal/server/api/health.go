package api

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping проверка живости сервера и доступности хранилища.
//
// @Summary      Health check
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "ok"
// @Failure      503 {string} string "store unavailable"
// @Router       /ping [get]
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(ContentType, "text/plain; charset=utf-8")

	if err := h.Svc.Health.Check(r.Context()); err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("store unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
