package problem

import (
	"strings"

	"github.com/stormerake/wayfinder/internal/config"
	"github.com/stormerake/wayfinder/internal/search"
)

// Move is the action type for graph problems: the label of the traversed
// edge, "from->to". Encoding both endpoints keeps moves invertible, which
// bidirectional search relies on.
type Move string

// NoOp is the sentinel move for "already at the goal".
const NoOp Move = "no_op"

// MoveBetween builds the move label for an edge.
func MoveBetween(from, to string) Move {
	return Move(from + "->" + to)
}

// Target returns the state the move ends in.
func (m Move) Target() string {
	if i := strings.Index(string(m), "->"); i >= 0 {
		return string(m)[i+2:]
	}
	return string(m)
}

// Inverse returns the same edge traversed in the opposite direction.
func (m Move) Inverse() Move {
	if i := strings.Index(string(m), "->"); i >= 0 {
		return MoveBetween(string(m)[i+2:], string(m)[:i])
	}
	return m
}

// Edge is one weighted transition in a compiled graph.
type Edge struct {
	From string
	To   string
	Cost float64
}

// GraphProblem is a weighted directed graph compiled once from its config
// definition. It implements the search Problem contract over string states
// and, when it has exactly one goal, the Reversible contract too. A
// GraphProblem is immutable after compilation; hot-reload builds a fresh
// catalog and swaps it in.
type GraphProblem struct {
	id          string
	description string
	initial     string
	goals       map[string]struct{}
	goalOrder   []string
	adjacency   map[string][]Edge // ordered as declared
	heuristics  map[string]float64
	reverse     *GraphProblem // transposed adjacency, nil on the reverse itself
}

// Compile builds a GraphProblem (and its transpose) from a definition.
// Definitions are assumed validated; Compile does not re-check them.
func Compile(def config.ProblemDef) *GraphProblem {
	p := &GraphProblem{
		id:          def.ID,
		description: def.Description,
		initial:     def.Initial,
		goals:       make(map[string]struct{}, len(def.Goals)),
		goalOrder:   append([]string(nil), def.Goals...),
		adjacency:   make(map[string][]Edge),
		heuristics:  def.Heuristics,
	}
	for _, g := range def.Goals {
		p.goals[g] = struct{}{}
	}
	for _, e := range def.Edges {
		c := 1.0 // omitted cost
		if e.Cost != nil {
			c = *e.Cost
		}
		p.addEdge(e.From, e.To, c)
		if def.Undirected {
			p.addEdge(e.To, e.From, c)
		}
	}

	if len(def.Goals) == 1 {
		r := &GraphProblem{
			id:          def.ID,
			description: def.Description,
			initial:     def.Goals[0],
			goals:       map[string]struct{}{def.Initial: {}},
			goalOrder:   []string{def.Initial},
			adjacency:   make(map[string][]Edge, len(p.adjacency)),
			heuristics:  nil, // heuristics estimate distance to the forward goal only
		}
		for _, edges := range p.adjacency {
			for _, e := range edges {
				r.addEdge(e.To, e.From, e.Cost)
			}
		}
		p.reverse = r
	}
	return p
}

func (p *GraphProblem) addEdge(from, to string, cost float64) {
	p.adjacency[from] = append(p.adjacency[from], Edge{From: from, To: to, Cost: cost})
}

// ID returns the problem's identifier.
func (p *GraphProblem) ID() string { return p.id }

// Description returns the problem's human-readable description.
func (p *GraphProblem) Description() string { return p.description }

// StateCount returns how many states have outgoing edges.
func (p *GraphProblem) StateCount() int { return len(p.adjacency) }

func (p *GraphProblem) InitialState() string { return p.initial }

func (p *GraphProblem) Actions(s string) []Move {
	edges := p.adjacency[s]
	moves := make([]Move, 0, len(edges))
	for _, e := range edges {
		moves = append(moves, MoveBetween(e.From, e.To))
	}
	return moves
}

func (p *GraphProblem) Result(s string, m Move) string { return m.Target() }

func (p *GraphProblem) StepCost(from string, m Move, to string) float64 {
	for _, e := range p.adjacency[from] {
		if e.To == to {
			return e.Cost
		}
	}
	return 0
}

func (p *GraphProblem) IsGoal(s string) bool {
	_, ok := p.goals[s]
	return ok
}

// Heuristic returns the configured estimate for s, 0 when absent. The zero
// fallback keeps A* admissible-by-default for unknown states.
func (p *GraphProblem) Heuristic(s string) float64 { return p.heuristics[s] }

// Bidirectional reports whether the problem supports backward search,
// which requires exactly one goal state.
func (p *GraphProblem) Bidirectional() bool { return p.reverse != nil }

// GoalState returns the single goal the backward direction starts from.
func (p *GraphProblem) GoalState() string { return p.goalOrder[0] }

// Reverse returns the transposed problem rooted at the goal.
func (p *GraphProblem) Reverse() search.Problem[string, Move] { return p.reverse }

// InverseAction flips a move into the opposite direction.
func (p *GraphProblem) InverseAction(m Move) Move { return m.Inverse() }
