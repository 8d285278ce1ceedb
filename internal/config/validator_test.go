package config_test

import (
	"strings"
	"testing"

	"github.com/stormerake/wayfinder/internal/config"
)

func cost(v float64) *float64 { return &v }

func validConfig() *config.Config {
	return &config.Config{
		Version: "v1",
		Problems: []config.ProblemDef{
			{
				ID:      "maze",
				Enabled: true,
				Initial: "start",
				Goals:   []string{"exit"},
				Edges: []config.EdgeDef{
					{From: "start", To: "exit", Cost: cost(1)},
				},
			},
		},
	}
}

func TestValidate_AcceptsValidConfig(t *testing.T) {
	if err := config.Validate(validConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RequiresVersion(t *testing.T) {
	cfg := validConfig()
	cfg.Version = ""
	if err := config.Validate(cfg); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestValidate_RejectsDuplicateProblemIDs(t *testing.T) {
	cfg := validConfig()
	cfg.Problems = append(cfg.Problems, cfg.Problems[0])
	err := config.Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "duplicate problem id") {
		t.Fatalf("error = %v, want duplicate id complaint", err)
	}
}

func TestValidate_RejectsNegativeCost(t *testing.T) {
	cfg := validConfig()
	cfg.Problems[0].Edges[0].Cost = cost(-2)
	err := config.Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "cost must be >= 0") {
		t.Fatalf("error = %v, want negative cost complaint", err)
	}
}

func TestValidate_RequiresInitialAndGoals(t *testing.T) {
	cfg := validConfig()
	cfg.Problems[0].Initial = ""
	cfg.Problems[0].Goals = nil
	err := config.Validate(cfg)
	if err == nil {
		t.Fatal("expected error for missing initial/goals")
	}
	if !strings.Contains(err.Error(), "initial is required") || !strings.Contains(err.Error(), "goal is required") {
		t.Errorf("error = %v, want both complaints", err)
	}
}

func TestApplyDefaults_LeavesExplicitZeroCost(t *testing.T) {
	cfg := validConfig()
	cfg.Problems[0].Edges[0].Cost = cost(0)
	cfg.Problems[0].Edges = append(cfg.Problems[0].Edges, config.EdgeDef{From: "exit", To: "start"})
	config.ApplyDefaults(cfg)
	if c := cfg.Problems[0].Edges[0].Cost; c == nil || *c != 0 {
		t.Errorf("explicit zero cost = %v, want kept at 0", c)
	}
	if c := cfg.Problems[0].Edges[1].Cost; c == nil || *c != 1 {
		t.Errorf("omitted cost = %v, want defaulted to 1", c)
	}
}

func TestValidate_RejectsNegativeHeuristic(t *testing.T) {
	cfg := validConfig()
	cfg.Problems[0].Heuristics = map[string]float64{"start": -1}
	err := config.Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "heuristic") {
		t.Fatalf("error = %v, want heuristic complaint", err)
	}
}
