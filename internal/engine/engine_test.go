package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stormerake/wayfinder/internal/config"
	"github.com/stormerake/wayfinder/internal/engine"
	"github.com/stormerake/wayfinder/internal/problem"
)

func cost(v float64) *float64 { return &v }

func testCatalog(t *testing.T) *problem.Catalog {
	t.Helper()
	cfg := &config.Config{
		Version: "v1",
		Problems: []config.ProblemDef{
			{
				ID:      "corridor",
				Enabled: true,
				Initial: "a",
				Goals:   []string{"d"},
				Heuristics: map[string]float64{
					"a": 3, "b": 2, "c": 1, "d": 0,
				},
				Undirected: true,
				Edges: []config.EdgeDef{
					{From: "a", To: "b", Cost: cost(1)},
					{From: "b", To: "c", Cost: cost(1)},
					{From: "c", To: "d", Cost: cost(1)},
				},
			},
		},
	}
	config.ApplyDefaults(cfg)
	cat, err := problem.BuildCatalog(cfg)
	if err != nil {
		t.Fatalf("BuildCatalog error: %v", err)
	}
	return cat
}

func testConf() config.EngineConf {
	return config.EngineConf{
		SearchWorkers:   2,
		QueueDepth:      16,
		SearchTimeoutMs: 2000,
		JobHistory:      16,
	}
}

func TestProcessSync_SolvesProblem(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng := engine.New(ctx, testCatalog(t), testConf())
	defer eng.Shutdown()

	for _, strategy := range []string{"bfs", "dfs", "ucs", "greedy", "astar", "bidirectional"} {
		res, err := eng.ProcessSync(ctx, engine.SearchRequest{
			RunID:     "run-" + strategy,
			ProblemID: "corridor",
			Strategy:  strategy,
		})
		if err != nil {
			t.Fatalf("%s: ProcessSync error: %v", strategy, err)
		}
		if res.Error != "" {
			t.Fatalf("%s: result error: %s", strategy, res.Error)
		}
		if res.Outcome != "solved" {
			t.Errorf("%s: outcome = %q, want solved", strategy, res.Outcome)
		}
		if res.PathCost != 3 {
			t.Errorf("%s: path cost = %v, want 3", strategy, res.PathCost)
		}
		if len(res.Actions) != 3 {
			t.Errorf("%s: actions = %v, want 3 moves", strategy, res.Actions)
		}
	}
}

func TestProcessSync_CostOrderedStrategiesTakeCheaperDetour(t *testing.T) {
	// The direct a→b edge is declared first but costs 10; routing through
	// c costs 2. The optimal solution must survive the duplicate filter.
	cfg := &config.Config{
		Version: "v1",
		Problems: []config.ProblemDef{
			{
				ID:      "detour",
				Enabled: true,
				Initial: "a",
				Goals:   []string{"g"},
				Edges: []config.EdgeDef{
					{From: "a", To: "b", Cost: cost(10)},
					{From: "a", To: "c", Cost: cost(1)},
					{From: "c", To: "b", Cost: cost(1)},
					{From: "b", To: "g", Cost: cost(1)},
				},
			},
		},
	}
	config.ApplyDefaults(cfg)
	cat, err := problem.BuildCatalog(cfg)
	if err != nil {
		t.Fatalf("BuildCatalog error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng := engine.New(ctx, cat, testConf())
	defer eng.Shutdown()

	for _, strategy := range []string{"ucs", "astar"} {
		res, err := eng.ProcessSync(ctx, engine.SearchRequest{
			RunID:     "detour-" + strategy,
			ProblemID: "detour",
			Strategy:  strategy,
		})
		if err != nil {
			t.Fatalf("%s: ProcessSync error: %v", strategy, err)
		}
		if res.Outcome != "solved" {
			t.Fatalf("%s: outcome = %q, want solved", strategy, res.Outcome)
		}
		if res.PathCost != 3 {
			t.Errorf("%s: path cost = %v, want the optimal 3", strategy, res.PathCost)
		}
		want := []string{"a->c", "c->b", "b->g"}
		if len(res.Actions) != len(want) {
			t.Fatalf("%s: actions = %v, want %v", strategy, res.Actions, want)
		}
		for i := range want {
			if res.Actions[i] != want[i] {
				t.Fatalf("%s: actions[%d] = %q, want %q", strategy, i, res.Actions[i], want[i])
			}
		}
	}
}

func TestProcessSync_UnknownProblem(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng := engine.New(ctx, testCatalog(t), testConf())
	defer eng.Shutdown()

	res, err := eng.ProcessSync(ctx, engine.SearchRequest{RunID: "r1", ProblemID: "missing"})
	if err != nil {
		t.Fatalf("ProcessSync error: %v", err)
	}
	if res.Error == "" || res.Outcome != "error" {
		t.Errorf("result = %+v, want error outcome for unknown problem", res)
	}
}

func TestProcessSync_UnknownStrategy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng := engine.New(ctx, testCatalog(t), testConf())
	defer eng.Shutdown()

	res, err := eng.ProcessSync(ctx, engine.SearchRequest{RunID: "r1", ProblemID: "corridor", Strategy: "dijkstra"})
	if err != nil {
		t.Fatalf("ProcessSync error: %v", err)
	}
	if res.Error == "" || res.Outcome != "error" {
		t.Errorf("result = %+v, want error outcome for unknown strategy", res)
	}
}

func TestProcessAsync_ResultRetrievableByRunID(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng := engine.New(ctx, testCatalog(t), testConf())
	defer eng.Shutdown()

	if !eng.ProcessAsync(engine.SearchRequest{RunID: "async-1", ProblemID: "corridor", Strategy: "bfs"}) {
		t.Fatal("ProcessAsync returned false with an empty queue")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		res, ok := eng.Job("async-1")
		if !ok {
			t.Fatal("Job(async-1) not found")
		}
		if res.Status == engine.StatusComplete {
			if res.Outcome != "solved" {
				t.Errorf("outcome = %q, want solved", res.Outcome)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("job still %q after deadline", res.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSwapCatalog_TakesEffect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng := engine.New(ctx, testCatalog(t), testConf())
	defer eng.Shutdown()

	empty, err := problem.BuildCatalog(&config.Config{Version: "v1"})
	if err != nil {
		t.Fatalf("BuildCatalog error: %v", err)
	}
	eng.SwapCatalog(empty)

	res, err := eng.ProcessSync(ctx, engine.SearchRequest{RunID: "r1", ProblemID: "corridor"})
	if err != nil {
		t.Fatalf("ProcessSync error: %v", err)
	}
	if res.Outcome != "error" {
		t.Errorf("outcome = %q, want error after catalog swap removed the problem", res.Outcome)
	}
}

func TestParseStrategy(t *testing.T) {
	if s, err := engine.ParseStrategy(""); err != nil || s != engine.StrategyBFS {
		t.Errorf("ParseStrategy(\"\") = %v, %v; want bfs default", s, err)
	}
	if _, err := engine.ParseStrategy("simulated-annealing"); err == nil {
		t.Error("ParseStrategy should reject unknown names")
	}
}
