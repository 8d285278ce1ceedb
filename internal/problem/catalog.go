package problem

import (
	"fmt"

	"github.com/stormerake/wayfinder/internal/config"
)

// Catalog holds the compiled problems by ID. It is immutable once built;
// hot-reload creates a new Catalog and swaps it atomically.
type Catalog struct {
	problems map[string]*GraphProblem
	ids      []string // declaration order
}

// BuildCatalog compiles every enabled problem in the config.
func BuildCatalog(cfg *config.Config) (*Catalog, error) {
	c := &Catalog{problems: make(map[string]*GraphProblem)}
	for _, def := range cfg.Problems {
		if !def.Enabled {
			continue
		}
		if _, ok := c.problems[def.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate problem id %q", def.ID)
		}
		c.problems[def.ID] = Compile(def)
		c.ids = append(c.ids, def.ID)
	}
	return c, nil
}

// Get returns a problem by ID.
func (c *Catalog) Get(id string) (*GraphProblem, bool) {
	p, ok := c.problems[id]
	return p, ok
}

// IDs returns the problem IDs in declaration order.
func (c *Catalog) IDs() []string { return c.ids }

// Len returns the number of compiled problems.
func (c *Catalog) Len() int { return len(c.problems) }
