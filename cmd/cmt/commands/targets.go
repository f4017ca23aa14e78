package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the targets discovered in the build tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, t := range c.app.Targets() {
				cmd.Println(t.Name)
			}
			return nil
		},
	}
}
