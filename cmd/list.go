package cmd

import (
	"github.com/goldyfruit/udf-inventory/internal/exit"
	"github.com/goldyfruit/udf-inventory/internal/output"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		outputMode  string
		hostnames   []string
		groups      []string
		selectorRaw string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Build the inventory from the current UDF deployment",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
			if err != nil {
				return exit.New(exit.Usage, err)
			}

			result, err := buildInventory(cmd.Context(), buildRequest{
				Hostnames: hostnames,
				Groups:    groups,
				Selector:  selectorRaw,
			})
			if err != nil {
				return err
			}

			opts := output.InventoryOptions{
				Mode:     mode,
				Endpoint: result.URL,
				Stats:    result.Stats,
			}
			if err := output.RenderInventory(cmd.OutOrStdout(), result.Inventory, opts); err != nil {
				return exit.New(exit.Usage, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputMode, "output", "json", "output format: table|json|yaml")
	cmd.Flags().StringSliceVar(&hostnames, "hostnames", nil, "hostname preferences in order (private_ipv4, public_ipv4, id, hostname)")
	cmd.Flags().StringSliceVar(&groups, "groups", nil, "group dimensions (os)")
	cmd.Flags().StringVar(&selectorRaw, "selector", "", "label selector matched against host variables")

	return cmd
}
