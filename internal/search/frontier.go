package search

import "container/heap"

// Frontier holds generated-but-not-yet-expanded nodes. The removal order is
// what distinguishes breadth-first, depth-first, and best-first search; the
// engine itself is ordering-agnostic.
type Frontier[S comparable, A any] interface {
	Add(n *Node[S, A])
	Remove() *Node[S, A]
	IsEmpty() bool
	Len() int
}

// -----------------------------------------------------------------------
// FIFO (breadth-first)
// -----------------------------------------------------------------------

// FIFOFrontier removes nodes in insertion order. It is the only frontier
// for which the engine's early goal check is valid.
type FIFOFrontier[S comparable, A any] struct {
	nodes []*Node[S, A]
	head  int
}

func NewFIFOFrontier[S comparable, A any]() *FIFOFrontier[S, A] {
	return &FIFOFrontier[S, A]{}
}

func (f *FIFOFrontier[S, A]) Add(n *Node[S, A]) {
	f.nodes = append(f.nodes, n)
}

func (f *FIFOFrontier[S, A]) Remove() *Node[S, A] {
	n := f.nodes[f.head]
	f.nodes[f.head] = nil // release for GC
	f.head++
	if f.head == len(f.nodes) {
		f.nodes = f.nodes[:0]
		f.head = 0
	}
	return n
}

func (f *FIFOFrontier[S, A]) IsEmpty() bool { return f.Len() == 0 }
func (f *FIFOFrontier[S, A]) Len() int      { return len(f.nodes) - f.head }

// -----------------------------------------------------------------------
// LIFO (depth-first)
// -----------------------------------------------------------------------

// LIFOFrontier removes the most recently inserted node first.
type LIFOFrontier[S comparable, A any] struct {
	nodes []*Node[S, A]
}

func NewLIFOFrontier[S comparable, A any]() *LIFOFrontier[S, A] {
	return &LIFOFrontier[S, A]{}
}

func (f *LIFOFrontier[S, A]) Add(n *Node[S, A]) {
	f.nodes = append(f.nodes, n)
}

func (f *LIFOFrontier[S, A]) Remove() *Node[S, A] {
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes[last] = nil
	f.nodes = f.nodes[:last]
	return n
}

func (f *LIFOFrontier[S, A]) IsEmpty() bool { return len(f.nodes) == 0 }
func (f *LIFOFrontier[S, A]) Len() int      { return len(f.nodes) }

// -----------------------------------------------------------------------
// Dedup decorator (graph search)
// -----------------------------------------------------------------------

// DedupFrontier wraps another frontier and silently drops nodes whose state
// has already been inserted during the run. This turns tree search into
// graph search: on finite state spaces with cycles the search terminates
// instead of revisiting states forever. Dropping at insertion time keeps
// the first path found to each state, which is only right when the removal
// order already guarantees the first path is the one wanted (breadth-first,
// depth-first). Cost-ordered frontiers need ExploredFrontier instead.
type DedupFrontier[S comparable, A any] struct {
	inner Frontier[S, A]
	seen  map[S]struct{}
}

func NewDedupFrontier[S comparable, A any](inner Frontier[S, A]) *DedupFrontier[S, A] {
	return &DedupFrontier[S, A]{inner: inner, seen: make(map[S]struct{})}
}

func (f *DedupFrontier[S, A]) Add(n *Node[S, A]) {
	if _, ok := f.seen[n.State]; ok {
		return
	}
	f.seen[n.State] = struct{}{}
	f.inner.Add(n)
}

func (f *DedupFrontier[S, A]) Remove() *Node[S, A] { return f.inner.Remove() }
func (f *DedupFrontier[S, A]) IsEmpty() bool       { return f.inner.IsEmpty() }
func (f *DedupFrontier[S, A]) Len() int            { return f.inner.Len() }

// -----------------------------------------------------------------------
// Explored-set decorator (graph search, cost-ordered)
// -----------------------------------------------------------------------

// ExploredFrontier wraps another frontier and defers duplicate dropping to
// removal time: every generated path may enter the queue, and a state is
// sealed only once an entry for it has been removed. A cost-ordered inner
// frontier therefore always expands the cheapest queued path to each state,
// even when a cheaper route is generated after an earlier, dearer one.
// Stale entries for sealed states are skipped lazily on removal.
type ExploredFrontier[S comparable, A any] struct {
	inner    Frontier[S, A]
	explored map[S]struct{}
	next     *Node[S, A] // pulled ahead by advance, not yet sealed
}

func NewExploredFrontier[S comparable, A any](inner Frontier[S, A]) *ExploredFrontier[S, A] {
	return &ExploredFrontier[S, A]{inner: inner, explored: make(map[S]struct{})}
}

func (f *ExploredFrontier[S, A]) Add(n *Node[S, A]) {
	if _, ok := f.explored[n.State]; ok {
		return
	}
	f.inner.Add(n)
}

// advance pulls the next unsealed node out of the inner frontier,
// discarding stale entries for states already expanded.
func (f *ExploredFrontier[S, A]) advance() {
	for f.next == nil && !f.inner.IsEmpty() {
		n := f.inner.Remove()
		if _, ok := f.explored[n.State]; ok {
			continue
		}
		f.next = n
	}
}

func (f *ExploredFrontier[S, A]) Remove() *Node[S, A] {
	f.advance()
	n := f.next
	f.next = nil
	f.explored[n.State] = struct{}{}
	return n
}

func (f *ExploredFrontier[S, A]) IsEmpty() bool {
	f.advance()
	return f.next == nil
}

func (f *ExploredFrontier[S, A]) Len() int {
	l := f.inner.Len()
	if f.next != nil {
		l++
	}
	return l
}

// -----------------------------------------------------------------------
// Priority (uniform-cost / greedy / A*)
// -----------------------------------------------------------------------

// EvalFunc scores a node for priority ordering; lower scores are removed
// first.
type EvalFunc[S comparable, A any] func(n *Node[S, A]) float64

// PathCostEval orders by accumulated path cost (uniform-cost search).
func PathCostEval[S comparable, A any]() EvalFunc[S, A] {
	return func(n *Node[S, A]) float64 { return n.PathCost }
}

// GreedyEval orders by the heuristic estimate alone (greedy best-first).
func GreedyEval[S comparable, A any](h func(S) float64) EvalFunc[S, A] {
	return func(n *Node[S, A]) float64 { return h(n.State) }
}

// AStarEval orders by path cost plus heuristic estimate.
func AStarEval[S comparable, A any](h func(S) float64) EvalFunc[S, A] {
	return func(n *Node[S, A]) float64 { return n.PathCost + h(n.State) }
}

type priorityItem[S comparable, A any] struct {
	node *Node[S, A]
	eval float64
	seq  uint64 // insertion order, breaks eval ties deterministically
}

type priorityHeap[S comparable, A any] []*priorityItem[S, A]

func (h priorityHeap[S, A]) Len() int { return len(h) }
func (h priorityHeap[S, A]) Less(i, j int) bool {
	if h[i].eval != h[j].eval {
		return h[i].eval < h[j].eval
	}
	return h[i].seq < h[j].seq
}
func (h priorityHeap[S, A]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *priorityHeap[S, A]) Push(x any) {
	*h = append(*h, x.(*priorityItem[S, A]))
}

func (h *priorityHeap[S, A]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// PriorityFrontier removes the node with the lowest evaluation first, with
// insertion order as the tie-breaker so runs are reproducible.
type PriorityFrontier[S comparable, A any] struct {
	heap priorityHeap[S, A]
	eval EvalFunc[S, A]
	seq  uint64
}

func NewPriorityFrontier[S comparable, A any](eval EvalFunc[S, A]) *PriorityFrontier[S, A] {
	f := &PriorityFrontier[S, A]{eval: eval}
	heap.Init(&f.heap)
	return f
}

func (f *PriorityFrontier[S, A]) Add(n *Node[S, A]) {
	f.seq++
	heap.Push(&f.heap, &priorityItem[S, A]{node: n, eval: f.eval(n), seq: f.seq})
}

func (f *PriorityFrontier[S, A]) Remove() *Node[S, A] {
	return heap.Pop(&f.heap).(*priorityItem[S, A]).node
}

func (f *PriorityFrontier[S, A]) IsEmpty() bool { return len(f.heap) == 0 }
func (f *PriorityFrontier[S, A]) Len() int      { return len(f.heap) }
