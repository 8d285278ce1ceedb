package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for:
//   - Duplicate problem IDs
//   - Required fields (version, id, initial, goals)
//   - Negative edge costs and heuristic estimates
//   - Edges whose endpoints are missing
func Validate(cfg *Config) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	ids := make(map[string]int) // id → first index
	var errs []string

	for i, p := range cfg.Problems {
		if p.ID == "" {
			errs = append(errs, fmt.Sprintf("problems[%d]: id is required", i))
			continue
		}
		if first, ok := ids[p.ID]; ok {
			errs = append(errs, fmt.Sprintf("duplicate problem id %q (problems[%d] and problems[%d])", p.ID, first, i))
		} else {
			ids[p.ID] = i
		}
		if p.Initial == "" {
			errs = append(errs, fmt.Sprintf("problem %s: initial is required", p.ID))
		}
		if len(p.Goals) == 0 {
			errs = append(errs, fmt.Sprintf("problem %s: at least one goal is required", p.ID))
		}
		for j, e := range p.Edges {
			if e.From == "" || e.To == "" {
				errs = append(errs, fmt.Sprintf("problem %s: edges[%d]: from and to are required", p.ID, j))
			}
			if e.Cost != nil && *e.Cost < 0 {
				errs = append(errs, fmt.Sprintf("problem %s: edges[%d] %s->%s: cost must be >= 0", p.ID, j, e.From, e.To))
			}
		}
		for state, h := range p.Heuristics {
			if h < 0 {
				errs = append(errs, fmt.Sprintf("problem %s: heuristic for %s must be >= 0", p.ID, state))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
