package cmd

import (
	"github.com/goldyfruit/udf-inventory/internal/exit"
	"github.com/goldyfruit/udf-inventory/internal/inventory"
	"github.com/goldyfruit/udf-inventory/internal/output"
	"github.com/spf13/cobra"
)

func newHostCmd() *cobra.Command {
	var outputMode string

	cmd := &cobra.Command{
		Use:   "host <name>",
		Short: "Show the variables of one inventory host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
			if err != nil {
				return exit.New(exit.Usage, err)
			}

			result, err := buildInventory(cmd.Context(), buildRequest{})
			if err != nil {
				return err
			}
			vars := inventory.HostVars(result.Inventory, args[0])
			if err := output.RenderHost(cmd.OutOrStdout(), vars, mode); err != nil {
				return exit.New(exit.Usage, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputMode, "output", "json", "output format: json|yaml")

	return cmd
}
