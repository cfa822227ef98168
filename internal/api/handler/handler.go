// Package handler provides HTTP handlers for the QBScore API. Every handler
// reads the same computed pipeline.Result; nothing is recomputed per request
// except mover lists with a custom size.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/qbscore/internal/api/respond"
	"github.com/albapepper/qbscore/internal/cache"
	"github.com/albapepper/qbscore/internal/config"
	"github.com/albapepper/qbscore/internal/pipeline"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	result *pipeline.Result
	cache  *cache.Cache
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(result *pipeline.Result, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		result: result,
		cache:  c,
		cfg:    cfg,
		logger: logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, status and the dataset the rankings were computed from.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":        "QBScore API",
		"status":      "running",
		"docs":        "/docs/",
		"source":      h.result.Source,
		"players":     len(h.result.Players),
		"computed_at": h.result.ComputedAt.Format(time.RFC3339),
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// serveCached answers from the cache when possible (304 on a matching
// If-None-Match) and otherwise builds, stores and writes the body.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key, contentType string, build func() ([]byte, error)) {
	ttl := h.cfg.CacheTTL

	if e, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), e.ETag) {
			respond.WriteNotModified(w, e.ETag)
			return
		}
		respond.WriteEntry(w, e, ttl, true)
		return
	}

	data, err := build()
	if err != nil {
		h.logger.Error("Build response failed", "key", key, "error", err)
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "INTERNAL", "Failed to build response", err.Error())
		return
	}

	e := h.cache.Set(key, data, contentType, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), e.ETag) {
		respond.WriteNotModified(w, e.ETag)
		return
	}
	respond.WriteEntry(w, e, ttl, false)
}
