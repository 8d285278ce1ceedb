package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/stormerake/wayfinder/internal/config"
	"github.com/stormerake/wayfinder/internal/engine"
	"github.com/stormerake/wayfinder/internal/problem"
)

func newRunCommand() *cobra.Command {
	var (
		strategy  string
		timeoutMs int
	)

	cmd := &cobra.Command{
		Use:   "run <problem-id>",
		Short: "Run a search over one problem",
		Example: `  # Breadth-first search (the default strategy)
  wayfind run corridor

  # A* with a 10s budget
  wayfind run romania --strategy astar --timeout-ms 10000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, err := loadCatalog(configPath)
			if err != nil {
				return err
			}
			if timeoutMs > 0 {
				cfg.Engine.SearchTimeoutMs = timeoutMs
			}
			cfg.Engine.SearchWorkers = 1
			cfg.Engine.QueueDepth = 1

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			eng := engine.New(ctx, cat, cfg.Engine)
			defer eng.Shutdown()

			res, err := eng.ProcessSync(ctx, engine.SearchRequest{
				RunID:     uuid.New().String(),
				ProblemID: args[0],
				Strategy:  strategy,
			})
			if err != nil {
				return err
			}
			if res.Error != "" {
				return fmt.Errorf("%s", res.Error)
			}

			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Printf("outcome:        %s\n", res.Outcome)
			fmt.Printf("path cost:      %g\n", res.PathCost)
			fmt.Printf("nodes expanded: %d\n", res.NodesExpanded)
			fmt.Printf("max frontier:   %d\n", res.MaxQueueSize)
			fmt.Printf("duration:       %dms\n", res.DurationMs)
			if len(res.Actions) > 0 {
				fmt.Printf("path:           %s\n", strings.Join(res.Actions, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "bfs", "search strategy (bfs|dfs|ucs|greedy|astar|bidirectional)")
	cmd.Flags().IntVar(&timeoutMs, "timeout-ms", 0, "per-search budget in milliseconds (0 = config default)")

	return cmd
}

// loadCatalog reads, validates, and compiles the problems file.
func loadCatalog(path string) (*config.Config, *problem.Catalog, error) {
	loader, err := config.NewLoader(path)
	if err != nil {
		return nil, nil, err
	}
	cfg := loader.Config()
	cat, err := problem.BuildCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, cat, nil
}
