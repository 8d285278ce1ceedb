package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newProblemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the problems in the problems file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, err := loadCatalog(configPath)
			if err != nil {
				return err
			}

			type info struct {
				ID            string `json:"id"`
				Description   string `json:"description"`
				States        int    `json:"states"`
				Bidirectional bool   `json:"bidirectional"`
			}
			infos := make([]info, 0, cat.Len())
			for _, id := range cat.IDs() {
				p, _ := cat.Get(id)
				infos = append(infos, info{
					ID:            p.ID(),
					Description:   p.Description(),
					States:        p.StateCount(),
					Bidirectional: p.Bidirectional(),
				})
			}

			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}
			for _, in := range infos {
				bidi := ""
				if in.Bidirectional {
					bidi = " [bidirectional]"
				}
				fmt.Printf("%-20s %d states%s  %s\n", in.ID, in.States, bidi, in.Description)
			}
			return nil
		},
	}
}
