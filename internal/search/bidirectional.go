package search

import "context"

// Reversible is a Problem that can also be searched from its goal backwards,
// which is what bidirectional search needs.
type Reversible[S comparable, A any] interface {
	Problem[S, A]

	// GoalState is the single known goal the backward direction starts from.
	GoalState() S
	// Reverse returns the problem with all transitions inverted, rooted at
	// the goal state.
	Reverse() Problem[S, A]
	// InverseAction maps an action observed in one direction to the action
	// that traverses the same transition in the other direction.
	InverseAction(a A) A
}

// Direction tags the two explorations of a bidirectional search.
type Direction int

const (
	DirForward Direction = iota
	DirBackward
)

// DualFrontier composes two independent frontiers, one per direction.
type DualFrontier[S comparable, A any] struct {
	Forward  Frontier[S, A]
	Backward Frontier[S, A]
}

// NewDualFIFOFrontier is the common case: breadth-first in both directions.
func NewDualFIFOFrontier[S comparable, A any]() DualFrontier[S, A] {
	return DualFrontier[S, A]{
		Forward:  NewFIFOFrontier[S, A](),
		Backward: NewFIFOFrontier[S, A](),
	}
}

// MeetDetector decides when the two explorations have met. Record is called
// for every generated node; it returns the opposite direction's node for the
// same state once both directions have reached it.
type MeetDetector[S comparable, A any] interface {
	Record(dir Direction, n *Node[S, A]) (opposite *Node[S, A], met bool)
	Reset()
}

// stateMeetDetector is the default: first node per state per direction wins,
// which with FIFO frontiers keeps meeting nodes shallowest.
type stateMeetDetector[S comparable, A any] struct {
	seen [2]map[S]*Node[S, A]
}

// NewStateMeetDetector returns the map-backed default MeetDetector.
func NewStateMeetDetector[S comparable, A any]() MeetDetector[S, A] {
	d := &stateMeetDetector[S, A]{}
	d.Reset()
	return d
}

func (d *stateMeetDetector[S, A]) Record(dir Direction, n *Node[S, A]) (*Node[S, A], bool) {
	if _, ok := d.seen[dir][n.State]; !ok {
		d.seen[dir][n.State] = n
	}
	opposite, met := d.seen[1-dir][n.State]
	return opposite, met
}

func (d *stateMeetDetector[S, A]) Reset() {
	d.seen[0] = make(map[S]*Node[S, A])
	d.seen[1] = make(map[S]*Node[S, A])
}

// BidirectionalEngine alternates breadth of exploration between the initial
// state and the goal state until the two waves meet. Each direction owns its
// own expander so the expansion counters never race; the merged metrics are
// exposed after the run.
type BidirectionalEngine[S comparable, A any] struct {
	// NoOp mirrors Engine.NoOp: the sentinel solution when the initial
	// state is already the goal.
	NoOp A

	forward  *Expander[S, A]
	backward *Expander[S, A]
	detector MeetDetector[S, A]
	metrics  Metrics
	problem  Reversible[S, A] // set for the duration of a Search call
}

// NewBidirectionalEngine creates an engine with its own pair of expanders
// and the default meeting detector.
func NewBidirectionalEngine[S comparable, A any]() *BidirectionalEngine[S, A] {
	return &BidirectionalEngine[S, A]{
		forward:  NewExpander[S, A](),
		backward: NewExpander[S, A](),
		detector: NewStateMeetDetector[S, A](),
	}
}

// Metrics returns the merged counters from the most recent run: expansions
// summed across directions, max queue size taken over both frontiers.
func (e *BidirectionalEngine[S, A]) Metrics() Metrics {
	m := e.metrics
	m.NodesExpanded = e.forward.ExpandCalls() + e.backward.ExpandCalls()
	return m
}

// Search runs both directions one removal at a time, forward first, and
// joins the two half-paths at the first state reached from both sides.
// A search fails as soon as either frontier empties: a side with nowhere
// left to go proves the waves can never meet.
func (e *BidirectionalEngine[S, A]) Search(ctx context.Context, p Reversible[S, A], df DualFrontier[S, A]) ([]A, Outcome) {
	e.metrics = Metrics{}
	e.forward.ResetCounter()
	e.backward.ResetCounter()
	e.detector.Reset()
	e.problem = p

	rootF := e.forward.RootNode(p.InitialState())
	if p.IsGoal(rootF.State) {
		e.metrics.PathCost = 0
		return []A{e.NoOp}, OutcomeSolved
	}
	rootB := e.backward.RootNode(p.GoalState())
	e.detector.Record(DirForward, rootF)
	e.detector.Record(DirBackward, rootB)

	df.Forward.Add(rootF)
	df.Backward.Add(rootB)
	e.recordQueueSizes(df)

	reverse := p.Reverse()
	for !df.Forward.IsEmpty() && !df.Backward.IsEmpty() {
		if ctx.Err() != nil {
			return nil, OutcomeCanceled
		}
		if actions, met := e.step(p, e.forward, df.Forward, DirForward); met {
			return actions, OutcomeSolved
		}
		if actions, met := e.step(reverse, e.backward, df.Backward, DirBackward); met {
			return actions, OutcomeSolved
		}
		e.recordQueueSizes(df)
	}
	return nil, OutcomeNoPath
}

func (e *BidirectionalEngine[S, A]) recordQueueSizes(df DualFrontier[S, A]) {
	e.metrics.recordQueueSize(df.Forward.Len() + df.Backward.Len())
}

// step removes and expands one node in the given direction, recording
// successors with the meeting detector.
func (e *BidirectionalEngine[S, A]) step(p Problem[S, A], exp *Expander[S, A], f Frontier[S, A], dir Direction) ([]A, bool) {
	if f.IsEmpty() {
		return nil, false
	}
	node := f.Remove()
	for _, succ := range exp.Expand(node, p) {
		opposite, met := e.detector.Record(dir, succ)
		if met {
			return e.join(succ, opposite, dir), true
		}
		f.Add(succ)
	}
	return nil, false
}

// join splices the two half-paths at the meeting state. The forward half is
// the usual parent walk; the backward half is walked from the meeting node
// toward the goal root, inverting each action into forward orientation.
func (e *BidirectionalEngine[S, A]) join(n, opposite *Node[S, A], dir Direction) []A {
	fwd, bwd := n, opposite
	if dir == DirBackward {
		fwd, bwd = opposite, n
	}
	e.metrics.PathCost = fwd.PathCost + bwd.PathCost

	actions := make([]A, 0, fwd.Depth+bwd.Depth)
	for t := fwd; !t.IsRoot(); t = t.Parent {
		actions = append(actions, t.Action)
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	// The backward chain runs meeting→goal when walked parent-wise, which
	// is already forward order; only the actions need inverting.
	for t := bwd; !t.IsRoot(); t = t.Parent {
		actions = append(actions, e.problem.InverseAction(t.Action))
	}
	return actions
}
