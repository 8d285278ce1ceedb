package config

// Config is the top-level YAML structure.
type Config struct {
	Version  string       `yaml:"version"`
	Engine   EngineConf   `yaml:"engine"`
	Problems []ProblemDef `yaml:"problems"`
}

// EngineConf holds tunable concurrency settings for the search service.
type EngineConf struct {
	SearchWorkers   int `yaml:"search_workers"`
	QueueDepth      int `yaml:"queue_depth"`
	SearchTimeoutMs int `yaml:"search_timeout_ms"`
	JobHistory      int `yaml:"job_history"`
}

// ProblemDef declares one searchable graph: weighted edges, an initial
// state, goal states, and optional per-state heuristic estimates.
type ProblemDef struct {
	ID          string             `yaml:"id"`
	Description string             `yaml:"description"`
	Enabled     bool               `yaml:"enabled"`
	Initial     string             `yaml:"initial"`
	Goals       []string           `yaml:"goals"`
	Undirected  bool               `yaml:"undirected"` // add the reverse of every edge
	Heuristics  map[string]float64 `yaml:"heuristics"` // state → estimated cost to goal
	Edges       []EdgeDef          `yaml:"edges"`
}

// EdgeDef is one weighted transition. Cost is a pointer so an omitted
// cost (defaulted to 1 at load time) stays distinguishable from an
// explicit zero.
type EdgeDef struct {
	From string   `yaml:"from"`
	To   string   `yaml:"to"`
	Cost *float64 `yaml:"cost"`
}
