package commands

import (
	"github.com/spf13/cobra"
	"github.com/tanji-dg/cmt/internal/app"
)

func (c *CLI) newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure the build tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kit, _ := cmd.Flags().GetString("kit")
			variant, _ := cmd.Flags().GetString("variant")
			return c.app.Configure(cmd.Context(), app.Options{Kit: kit, Variant: variant})
		},
	}
	cmd.Flags().StringP("kit", "k", "", "Kit declared in cmt.yaml to configure with")
	cmd.Flags().StringP("variant", "v", "", "Variant declared in cmake-variants.yaml to apply")
	return cmd
}

func (c *CLI) newCleanConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean-configure",
		Short: "Delete the cache and generated files, then configure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kit, _ := cmd.Flags().GetString("kit")
			variant, _ := cmd.Flags().GetString("variant")
			return c.app.CleanConfigure(cmd.Context(), app.Options{Kit: kit, Variant: variant})
		},
	}
	cmd.Flags().StringP("kit", "k", "", "Kit declared in cmt.yaml to configure with")
	cmd.Flags().StringP("variant", "v", "", "Variant declared in cmake-variants.yaml to apply")
	return cmd
}
