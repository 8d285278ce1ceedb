package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stormerake/wayfinder/internal/config"
	"github.com/stormerake/wayfinder/internal/engine"
	"github.com/stormerake/wayfinder/internal/metrics"
	"github.com/stormerake/wayfinder/internal/problem"
)

const maxBatchSize = 100

// Handler holds all HTTP handler dependencies.
type Handler struct {
	eng    *engine.Engine
	loader *config.Loader
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes.
func New(eng *engine.Engine, loader *config.Loader) http.Handler {
	h := &Handler{eng: eng, loader: loader, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/searches", h.runSearch)
	h.mux.HandleFunc("POST /v1/searches/batch", h.runBatch)
	h.mux.HandleFunc("GET /v1/searches/{id}", h.getSearch)
	h.mux.HandleFunc("GET /v1/problems", h.listProblems)
	h.mux.HandleFunc("POST /v1/problems/reload", h.reloadProblems)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// POST /v1/searches — synchronous single search.
func (h *Handler) runSearch(w http.ResponseWriter, r *http.Request) {
	var req engine.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if req.ProblemID == "" {
		writeError(w, http.StatusBadRequest, "problem_id is required")
		return
	}
	if req.RunID == "" {
		req.RunID = uuid.New().String()
	}

	res, err := h.eng.ProcessSync(r.Context(), req)
	if err != nil {
		writeRunError(w, http.StatusTooManyRequests, req.RunID, err.Error())
		return
	}
	if res.Error != "" {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /v1/searches/batch — async batch (up to 100 searches).
func (h *Handler) runBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []engine.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if len(reqs) == 0 {
		writeError(w, http.StatusBadRequest, "batch must contain at least one search")
		return
	}
	if len(reqs) > maxBatchSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch size %d exceeds max %d", len(reqs), maxBatchSize))
		return
	}

	batchID := uuid.New().String()
	runIDs := make([]string, 0, len(reqs))
	queued := 0
	for i := range reqs {
		if reqs[i].RunID == "" {
			reqs[i].RunID = uuid.New().String()
		}
		runIDs = append(runIDs, reqs[i].RunID)
		if h.eng.ProcessAsync(reqs[i]) {
			queued++
		}
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"batch_id": batchID,
		"run_ids":  runIDs,
		"total":    len(reqs),
		"queued":   queued,
		"rejected": len(reqs) - queued,
	})
}

// GET /v1/searches/{id} — result lookup for async runs.
func (h *Handler) getSearch(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("id")
	res, ok := h.eng.Job(runID)
	if !ok {
		writeRunError(w, http.StatusNotFound, runID, "unknown run id")
		return
	}
	if res.Status == engine.StatusPending {
		writeJSON(w, http.StatusAccepted, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /v1/problems — list loaded problems.
func (h *Handler) listProblems(w http.ResponseWriter, r *http.Request) {
	cfg := h.loader.Config()
	cat := h.eng.Catalog()

	type problemInfo struct {
		ID            string `json:"id"`
		Description   string `json:"description"`
		States        int    `json:"states"`
		Bidirectional bool   `json:"bidirectional"`
	}
	infos := make([]problemInfo, 0, cat.Len())
	for _, id := range cat.IDs() {
		p, _ := cat.Get(id)
		infos = append(infos, problemInfo{
			ID:            p.ID(),
			Description:   p.Description(),
			States:        p.StateCount(),
			Bidirectional: p.Bidirectional(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":    cfg.Version,
		"strategies": engine.Strategies(),
		"problems":   infos,
	})
}

// POST /v1/problems/reload — hot-reload problems from disk.
func (h *Handler) reloadProblems(w http.ResponseWriter, r *http.Request) {
	// Reload validates before swapping; a bad file leaves the old config
	// and catalog serving.
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	cat, err := problem.BuildCatalog(cfg)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.eng.SwapCatalog(cat)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded":       true,
		"problems_count": cat.Len(),
	})
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz — 503 if the search queue is >80% full.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	util := h.eng.QueueUtilization()
	metrics.QueueUtilization.Set(util)
	if util > 0.8 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":            "overloaded",
			"queue_utilization": util,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ready",
		"queue_utilization": util,
	})
}
