package problem_test

import (
	"context"
	"testing"

	"github.com/stormerake/wayfinder/internal/config"
	"github.com/stormerake/wayfinder/internal/problem"
	"github.com/stormerake/wayfinder/internal/search"
)

func cost(v float64) *float64 { return &v }

func routeDef() config.ProblemDef {
	return config.ProblemDef{
		ID:      "route",
		Enabled: true,
		Initial: "depot",
		Goals:   []string{"dock"},
		Heuristics: map[string]float64{
			"depot": 3, "yard": 2, "gate": 1, "dock": 0,
		},
		Edges: []config.EdgeDef{
			{From: "depot", To: "yard", Cost: cost(2)},
			{From: "depot", To: "gate", Cost: cost(5)},
			{From: "yard", To: "gate", Cost: cost(1)},
			{From: "gate", To: "dock", Cost: cost(1)},
		},
	}
}

func TestCompile_ActionsFollowDeclarationOrder(t *testing.T) {
	p := problem.Compile(routeDef())

	moves := p.Actions("depot")
	if len(moves) != 2 {
		t.Fatalf("Actions(depot) = %v, want 2 moves", moves)
	}
	if moves[0] != problem.MoveBetween("depot", "yard") || moves[1] != problem.MoveBetween("depot", "gate") {
		t.Errorf("Actions(depot) = %v, want declaration order", moves)
	}
}

func TestGraphProblem_TransitionModel(t *testing.T) {
	p := problem.Compile(routeDef())

	m := problem.MoveBetween("depot", "yard")
	if got := p.Result("depot", m); got != "yard" {
		t.Errorf("Result = %q, want yard", got)
	}
	if got := p.StepCost("depot", m, "yard"); got != 2 {
		t.Errorf("StepCost = %v, want 2", got)
	}
	if !p.IsGoal("dock") || p.IsGoal("depot") {
		t.Error("goal test wrong: dock is the only goal")
	}
	if h := p.Heuristic("yard"); h != 2 {
		t.Errorf("Heuristic(yard) = %v, want 2", h)
	}
	if h := p.Heuristic("unknown"); h != 0 {
		t.Errorf("Heuristic(unknown) = %v, want 0 fallback", h)
	}
}

func TestGraphProblem_UniformCostSearch(t *testing.T) {
	p := problem.Compile(routeDef())
	eng := search.NewEngine(search.NewExpander[string, problem.Move]())

	frontier := search.NewPriorityFrontier(search.PathCostEval[string, problem.Move]())
	actions, outcome := eng.Search(context.Background(), p, frontier)
	if outcome != search.OutcomeSolved {
		t.Fatalf("outcome = %v, want solved", outcome)
	}
	// depot→yard→gate→dock costs 4; depot→gate→dock costs 6.
	if c := eng.Metrics().PathCost; c != 4 {
		t.Errorf("PathCost = %v, want 4", c)
	}
	if len(actions) != 3 {
		t.Errorf("actions = %v, want the 3-hop cheap route", actions)
	}
}

func TestGraphProblem_ReverseTransposesEdges(t *testing.T) {
	p := problem.Compile(routeDef())
	if !p.Bidirectional() {
		t.Fatal("single-goal problem should support backward search")
	}
	r := p.Reverse()
	if r.InitialState() != "dock" {
		t.Errorf("reverse initial = %q, want dock", r.InitialState())
	}
	if !r.IsGoal("depot") {
		t.Error("reverse goal should be the forward initial state")
	}
	moves := r.Actions("dock")
	if len(moves) != 1 || moves[0] != problem.MoveBetween("dock", "gate") {
		t.Errorf("reverse Actions(dock) = %v, want [dock->gate]", moves)
	}
	if c := r.StepCost("dock", moves[0], "gate"); c != 1 {
		t.Errorf("reverse StepCost = %v, want 1", c)
	}
}

func TestCompile_ExplicitZeroCostStaysZero(t *testing.T) {
	def := config.ProblemDef{
		ID:      "ferry",
		Enabled: true,
		Initial: "x",
		Goals:   []string{"z"},
		Edges: []config.EdgeDef{
			{From: "x", To: "y", Cost: cost(0)},
			{From: "y", To: "z"}, // cost omitted, defaults to 1
		},
	}
	p := problem.Compile(def)
	if c := p.StepCost("x", problem.MoveBetween("x", "y"), "y"); c != 0 {
		t.Errorf("StepCost(x,y) = %v, want declared 0", c)
	}
	if c := p.StepCost("y", problem.MoveBetween("y", "z"), "z"); c != 1 {
		t.Errorf("StepCost(y,z) = %v, want defaulted 1", c)
	}
}

func TestMove_Inverse(t *testing.T) {
	m := problem.MoveBetween("a", "b")
	if m.Inverse() != problem.MoveBetween("b", "a") {
		t.Errorf("Inverse = %q, want b->a", m.Inverse())
	}
	if m.Target() != "b" {
		t.Errorf("Target = %q, want b", m.Target())
	}
}

func TestBuildCatalog_SkipsDisabled(t *testing.T) {
	cfg := &config.Config{
		Version: "v1",
		Problems: []config.ProblemDef{
			routeDef(),
			{ID: "parked", Enabled: false, Initial: "x", Goals: []string{"y"}},
		},
	}
	c, err := problem.BuildCatalog(cfg)
	if err != nil {
		t.Fatalf("BuildCatalog error: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
	if _, ok := c.Get("parked"); ok {
		t.Error("disabled problem should not be in the catalog")
	}
	if _, ok := c.Get("route"); !ok {
		t.Error("route missing from catalog")
	}
}
