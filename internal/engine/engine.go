package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/stormerake/wayfinder/internal/config"
	"github.com/stormerake/wayfinder/internal/metrics"
	"github.com/stormerake/wayfinder/internal/problem"
	"github.com/stormerake/wayfinder/internal/search"
)

// SearchRequest asks for one search run over a catalog problem.
type SearchRequest struct {
	RunID     string `json:"run_id,omitempty"`
	ProblemID string `json:"problem_id"`
	Strategy  string `json:"strategy"` // empty defaults to bfs
}

// SearchResult is the outcome of one search run.
type SearchResult struct {
	RunID         string   `json:"run_id"`
	ProblemID     string   `json:"problem_id"`
	Strategy      string   `json:"strategy"`
	Status        string   `json:"status"` // "pending" or "complete"
	Outcome       string   `json:"outcome,omitempty"`
	Actions       []string `json:"actions"`
	PathCost      float64  `json:"path_cost"`
	NodesExpanded int      `json:"nodes_expanded"`
	MaxQueueSize  int      `json:"max_queue_size"`
	DurationMs    int64    `json:"duration_ms"`
	Error         string   `json:"error,omitempty"`
}

const (
	StatusPending  = "pending"
	StatusComplete = "complete"
)

// Engine executes search requests on a worker pool over the compiled
// problem catalog. Every run gets its own core engine, expander, and
// frontier, so runs never share mutable state.
type Engine struct {
	catalog atomic.Pointer[problem.Catalog]
	pool    *taskPool[*searchWork]
	jobs    *jobStore
	conf    *config.EngineConf
}

type searchWork struct {
	req     SearchRequest
	resultC chan *SearchResult
}

// New creates an Engine using conf and starts the worker pool.
func New(ctx context.Context, cat *problem.Catalog, conf config.EngineConf) *Engine {
	e := &Engine{
		jobs: newJobStore(conf.JobHistory),
		conf: &conf,
	}
	e.catalog.Store(cat)

	e.pool = newTaskPool(ctx, conf.SearchWorkers, conf.QueueDepth,
		func(ctx context.Context, w *searchWork) {
			res := e.runSearch(ctx, w.req)
			e.jobs.put(res)
			if w.resultC != nil {
				w.resultC <- res
			}
		})

	return e
}

// SwapCatalog atomically replaces the problem catalog (used on hot-reload).
func (e *Engine) SwapCatalog(cat *problem.Catalog) {
	e.catalog.Store(cat)
}

// Catalog returns the current problem catalog.
func (e *Engine) Catalog() *problem.Catalog {
	return e.catalog.Load()
}

// ProcessSync runs a search and waits for its result, bounded by the
// configured search timeout plus queueing slack.
func (e *Engine) ProcessSync(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	resultC := make(chan *SearchResult, 1)
	w := &searchWork{req: req, resultC: resultC}

	if !e.pool.Submit(w) {
		metrics.SearchesDropped.Inc()
		return nil, fmt.Errorf("search queue full (capacity %d)", e.conf.QueueDepth)
	}
	metrics.SearchesEnqueued.Inc()

	// The run itself is cut off by the per-run timeout; the wait here only
	// adds room for queueing delay.
	wait := 2 * time.Duration(e.conf.SearchTimeoutMs) * time.Millisecond
	select {
	case res := <-resultC:
		return res, nil
	case <-time.After(wait):
		return nil, fmt.Errorf("search %s timed out after %v in queue", req.RunID, wait)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ProcessAsync enqueues a search for background processing; the result is
// retrievable later via Job. Returns false if the queue is full.
func (e *Engine) ProcessAsync(req SearchRequest) bool {
	// The pending marker goes in before the submit: a worker may dequeue
	// and finish the run at any point after Submit returns, and its result
	// must not race a marker stored afterwards.
	e.jobs.put(&SearchResult{
		RunID:     req.RunID,
		ProblemID: req.ProblemID,
		Strategy:  req.Strategy,
		Status:    StatusPending,
	})
	if !e.pool.Submit(&searchWork{req: req}) {
		e.jobs.remove(req.RunID)
		metrics.SearchesDropped.Inc()
		return false
	}
	metrics.SearchesEnqueued.Inc()
	return true
}

// Job returns the stored result for a run id.
func (e *Engine) Job(runID string) (*SearchResult, bool) {
	return e.jobs.get(runID)
}

// QueueUtilization returns queue used / capacity (0–1).
func (e *Engine) QueueUtilization() float64 {
	if e.pool.QueueCap() == 0 {
		return 0
	}
	return float64(e.pool.QueueLen()) / float64(e.pool.QueueCap())
}

func (e *Engine) runSearch(ctx context.Context, req SearchRequest) *SearchResult {
	start := time.Now()
	res := &SearchResult{
		RunID:     req.RunID,
		ProblemID: req.ProblemID,
		Strategy:  req.Strategy,
		Status:    StatusComplete,
		Actions:   []string{},
	}

	strat, err := ParseStrategy(req.Strategy)
	if err != nil {
		return e.failResult(res, err)
	}
	res.Strategy = string(strat)

	p, ok := e.catalog.Load().Get(req.ProblemID)
	if !ok {
		return e.failResult(res, fmt.Errorf("unknown problem %q", req.ProblemID))
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Duration(e.conf.SearchTimeoutMs)*time.Millisecond)
	defer cancel()

	var (
		actions []problem.Move
		outcome search.Outcome
		m       search.Metrics
	)
	if strat == StrategyBidirectional {
		if !p.Bidirectional() {
			return e.failResult(res, fmt.Errorf("problem %q needs exactly one goal for bidirectional search", req.ProblemID))
		}
		bi := search.NewBidirectionalEngine[string, problem.Move]()
		bi.NoOp = problem.NoOp
		actions, outcome = bi.Search(runCtx, p, dualFrontier())
		m = bi.Metrics()
	} else {
		f, early := strat.frontier(p)
		core := search.NewEngine(search.NewExpander[string, problem.Move]())
		core.EarlyGoalCheck = early
		core.NoOp = problem.NoOp
		actions, outcome = core.Search(runCtx, p, f)
		m = core.Metrics()
	}

	res.Outcome = outcome.String()
	for _, a := range actions {
		res.Actions = append(res.Actions, string(a))
	}
	res.PathCost = m.PathCost
	res.NodesExpanded = m.NodesExpanded
	res.MaxQueueSize = m.MaxQueueSize
	res.DurationMs = time.Since(start).Milliseconds()

	metrics.SearchesCompleted.WithLabelValues(res.Strategy, res.Outcome).Inc()
	metrics.NodesExpanded.Add(float64(m.NodesExpanded))
	metrics.SearchDuration.Observe(float64(res.DurationMs))
	return res
}

func (e *Engine) failResult(res *SearchResult, err error) *SearchResult {
	res.Error = err.Error()
	res.Outcome = "error"
	res.DurationMs = 0
	metrics.SearchesCompleted.WithLabelValues(res.Strategy, "error").Inc()
	return res
}

// Shutdown drains the worker pool gracefully.
func (e *Engine) Shutdown() {
	e.pool.Drain()
}
