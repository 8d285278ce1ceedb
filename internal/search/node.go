package search

// Node is one point in the search tree: a state plus the path that reached
// it. Nodes are immutable once created; expansion only allocates children.
type Node[S comparable, A any] struct {
	State    S
	Parent   *Node[S, A] // nil for the root
	Action   A           // action taken at Parent to reach State; zero for the root
	PathCost float64     // cumulative step costs from the root
	Depth    int
}

// IsRoot reports whether the node has no parent.
func (n *Node[S, A]) IsRoot() bool { return n.Parent == nil }

// Expander builds nodes from a problem's transition model and counts how
// many times Expand was called, which backs the nodes-expanded metric.
type Expander[S comparable, A any] struct {
	calls int
}

// NewExpander creates an Expander with a zeroed call counter.
func NewExpander[S comparable, A any]() *Expander[S, A] {
	return &Expander[S, A]{}
}

// RootNode builds the parent-less, depth-0, cost-0 node for a search.
func (e *Expander[S, A]) RootNode(initial S) *Node[S, A] {
	return &Node[S, A]{State: initial}
}

// Expand produces one child node per action applicable in n.State, in the
// order the problem lists them. The call counter is incremented once per
// invocation, not once per child.
func (e *Expander[S, A]) Expand(n *Node[S, A], p Problem[S, A]) []*Node[S, A] {
	e.calls++
	actions := p.Actions(n.State)
	children := make([]*Node[S, A], 0, len(actions))
	for _, a := range actions {
		next := p.Result(n.State, a)
		children = append(children, &Node[S, A]{
			State:    next,
			Parent:   n,
			Action:   a,
			PathCost: n.PathCost + p.StepCost(n.State, a, next),
			Depth:    n.Depth + 1,
		})
	}
	return children
}

// ExpandCalls returns how many times Expand ran since the last reset.
func (e *Expander[S, A]) ExpandCalls() int { return e.calls }

// ResetCounter zeroes the call counter. The engine calls this at the start
// of every run so metrics do not leak across runs.
func (e *Expander[S, A]) ResetCounter() { e.calls = 0 }
