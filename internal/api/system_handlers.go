package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gestion-eventos/internal/middleware"
	"github.com/gestion-eventos/internal/scheduler"
)

const healthTimeout = 2 * time.Second

// Health godoc
// @Summary Health check
// @Description Reports database reachability and whether the scheduler is running
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Health status"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status, code, dbStatus := "ok", http.StatusOK, "ok"
	if err := h.db.Ping(ctx); err != nil {
		middleware.LoggerFromContext(r.Context()).Warn().Err(err).Msg("health check: database unreachable")
		status, code, dbStatus = "degraded", http.StatusServiceUnavailable, "unreachable"
	}

	respondJSON(w, code, map[string]interface{}{
		"status":    status,
		"database":  dbStatus,
		"scheduler": h.scheduler.IsRunning(),
	})
}

// Status godoc
// @Summary System status
// @Description Scheduler state and next run of each background job
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "System status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	jobs := map[string]*time.Time{}
	for _, name := range []string{scheduler.EventSweepJob, scheduler.LimiterCleanupJob} {
		jobs[name] = h.scheduler.NextRun(name)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"scheduler_running": h.scheduler.IsRunning(),
		"next_runs":         jobs,
	})
}
