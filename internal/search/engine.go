package search

import "context"

// Problem is the abstract search problem contract. State and action types
// are opaque to the engine; states must be comparable so collaborating
// layers can deduplicate them.
type Problem[S comparable, A any] interface {
	InitialState() S
	// Actions lists the actions applicable in s, in a stable problem-defined
	// order. Successor generation follows this order.
	Actions(s S) []A
	// Result returns the state reached by applying a in s.
	Result(s S, a A) S
	// StepCost returns the non-negative cost of the transition from → to via a.
	StepCost(from S, a A, to S) float64
	IsGoal(s S) bool
}

// Outcome tags how a search ended. NoPath and Canceled share the same
// empty-solution shape; the tag is what tells them apart.
type Outcome int

const (
	OutcomeSolved Outcome = iota
	OutcomeNoPath
	OutcomeCanceled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeNoPath:
		return "no_path"
	case OutcomeCanceled:
		return "canceled"
	}
	return "unknown"
}

// Metrics are the per-run instrumentation counters. They are reset at the
// start of every Search call and owned exclusively by that run.
type Metrics struct {
	NodesExpanded int     `json:"nodes_expanded"`
	QueueSize     int     `json:"queue_size"`
	MaxQueueSize  int     `json:"max_queue_size"`
	PathCost      float64 `json:"path_cost"`
}

func (m *Metrics) recordQueueSize(size int) {
	m.QueueSize = size
	if size > m.MaxQueueSize {
		m.MaxQueueSize = size
	}
}

// Engine drives the queue-search template: seed the frontier with the root,
// then remove, goal-check, expand, and insert until a goal is found, the
// frontier empties, or the context is canceled. Strategy differences
// (breadth-first, depth-first, uniform-cost, greedy, A*) come entirely from
// the frontier passed to Search; the loop never changes.
//
// An Engine serves one search at a time. Concurrent searches need separate
// engines so the expander counter and metrics are never shared.
type Engine[S comparable, A any] struct {
	// EarlyGoalCheck tests successors at insertion time instead of at
	// removal time. With a FIFO frontier this finds the same shallowest
	// solution one layer of expansions sooner; with any other ordering it
	// can return suboptimal solutions. Correct use is the caller's
	// responsibility.
	EarlyGoalCheck bool

	// NoOp is the sentinel returned as the single-element solution when the
	// initial state already satisfies the goal. Defaults to A's zero value.
	NoOp A

	expander *Expander[S, A]
	metrics  Metrics
}

// NewEngine creates an Engine around the given expander.
func NewEngine[S comparable, A any](expander *Expander[S, A]) *Engine[S, A] {
	return &Engine[S, A]{expander: expander}
}

// Expander returns the engine's node expander.
func (e *Engine[S, A]) Expander() *Expander[S, A] { return e.expander }

// Metrics returns a snapshot of the counters from the most recent run.
func (e *Engine[S, A]) Metrics() Metrics {
	m := e.metrics
	m.NodesExpanded = e.expander.ExpandCalls()
	return m
}

// Search explores p using the removal order of f and returns the action
// sequence from the initial state to a goal. The slice is empty for both
// OutcomeNoPath and OutcomeCanceled; when the initial state is already a
// goal it contains the single NoOp sentinel.
//
// Cancellation is cooperative: ctx is polled once per iteration, so a
// single expand-and-insert cycle is never interrupted mid-flight.
func (e *Engine[S, A]) Search(ctx context.Context, p Problem[S, A], f Frontier[S, A]) ([]A, Outcome) {
	e.metrics = Metrics{}
	e.expander.ResetCounter()

	root := e.expander.RootNode(p.InitialState())
	if e.EarlyGoalCheck && p.IsGoal(root.State) {
		return e.solution(root), OutcomeSolved
	}
	f.Add(root)
	e.metrics.recordQueueSize(f.Len())

	for !f.IsEmpty() {
		if ctx.Err() != nil {
			return nil, OutcomeCanceled
		}
		node := f.Remove()
		if !e.EarlyGoalCheck && p.IsGoal(node.State) {
			return e.solution(node), OutcomeSolved
		}
		for _, succ := range e.expander.Expand(node, p) {
			if e.EarlyGoalCheck && p.IsGoal(succ.State) {
				return e.solution(succ), OutcomeSolved
			}
			f.Add(succ)
		}
		e.metrics.recordQueueSize(f.Len())
	}
	return nil, OutcomeNoPath
}

// solution walks parent references from goal back to the root, collecting
// actions, then reverses into root→goal order. The path cost lands in the
// metrics here and nowhere earlier.
func (e *Engine[S, A]) solution(goal *Node[S, A]) []A {
	e.metrics.PathCost = goal.PathCost
	if goal.IsRoot() {
		return []A{e.NoOp}
	}
	actions := make([]A, 0, goal.Depth)
	for n := goal; !n.IsRoot(); n = n.Parent {
		actions = append(actions, n.Action)
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}
