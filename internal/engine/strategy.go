package engine

import (
	"fmt"

	"github.com/stormerake/wayfinder/internal/problem"
	"github.com/stormerake/wayfinder/internal/search"
)

// Strategy names a frontier discipline. The search loop itself never
// changes; the strategy decides ordering and goal-check timing.
type Strategy string

const (
	StrategyBFS           Strategy = "bfs"
	StrategyDFS           Strategy = "dfs"
	StrategyUCS           Strategy = "ucs"
	StrategyGreedy        Strategy = "greedy"
	StrategyAStar         Strategy = "astar"
	StrategyBidirectional Strategy = "bidirectional"
)

// Strategies lists the accepted strategy names.
func Strategies() []string {
	return []string{
		string(StrategyBFS), string(StrategyDFS), string(StrategyUCS),
		string(StrategyGreedy), string(StrategyAStar), string(StrategyBidirectional),
	}
}

// ParseStrategy validates a strategy name. An empty name defaults to bfs.
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return StrategyBFS, nil
	}
	s := Strategy(name)
	switch s {
	case StrategyBFS, StrategyDFS, StrategyUCS, StrategyGreedy, StrategyAStar, StrategyBidirectional:
		return s, nil
	}
	return "", fmt.Errorf("unknown strategy %q (want one of %v)", name, Strategies())
}

// frontier builds the frontier for a strategy and reports whether the
// early goal check applies. Every frontier is wrapped for duplicate
// dropping so searches terminate on cyclic graphs. The cost-ordered
// strategies get the removal-time explored set: insertion-time dropping
// would pin the first path generated to a state even when a cheaper one
// turns up later.
func (s Strategy) frontier(p *problem.GraphProblem) (search.Frontier[string, problem.Move], bool) {
	switch s {
	case StrategyDFS:
		return search.NewDedupFrontier[string, problem.Move](search.NewLIFOFrontier[string, problem.Move]()), false
	case StrategyUCS:
		return search.NewExploredFrontier[string, problem.Move](search.NewPriorityFrontier(search.PathCostEval[string, problem.Move]())), false
	case StrategyGreedy:
		return search.NewExploredFrontier[string, problem.Move](search.NewPriorityFrontier(search.GreedyEval[string, problem.Move](p.Heuristic))), false
	case StrategyAStar:
		return search.NewExploredFrontier[string, problem.Move](search.NewPriorityFrontier(search.AStarEval[string, problem.Move](p.Heuristic))), false
	default: // bfs
		return search.NewDedupFrontier[string, problem.Move](search.NewFIFOFrontier[string, problem.Move]()), true
	}
}

// dualFrontier builds the two-direction frontier for bidirectional runs,
// each side with its own duplicate filter.
func dualFrontier() search.DualFrontier[string, problem.Move] {
	return search.DualFrontier[string, problem.Move]{
		Forward:  search.NewDedupFrontier[string, problem.Move](search.NewFIFOFrontier[string, problem.Move]()),
		Backward: search.NewDedupFrontier[string, problem.Move](search.NewFIFOFrontier[string, problem.Move]()),
	}
}
