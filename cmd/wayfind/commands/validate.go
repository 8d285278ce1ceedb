package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the problems file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, err := loadCatalog(configPath)
			if err != nil {
				return err
			}
			fmt.Printf("%s: OK (%d problems)\n", configPath, cat.Len())
			return nil
		},
	}
}
