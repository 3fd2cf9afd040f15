package cmd

import (
	"errors"
	"fmt"

	"github.com/goldyfruit/udf-inventory/internal/exit"
	"github.com/goldyfruit/udf-inventory/internal/inventory"
	"github.com/goldyfruit/udf-inventory/internal/output"
	"github.com/spf13/cobra"
)

// Version is stamped at build time through -ldflags.
var Version = "dev"

var (
	configPath string
	endpoint   string
	verbose    bool
	logFormat  string
)

func NewRootCmd() *cobra.Command {
	var (
		listAll  bool
		hostName string
	)

	cmd := &cobra.Command{
		Use:           "udf-inventory",
		Short:         "Ansible dynamic inventory for UDF lab deployments",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listAll && hostName != "" {
				return exit.New(exit.Usage, errors.New("--list and --host are mutually exclusive"))
			}
			if !listAll && hostName == "" {
				return cmd.Help()
			}

			result, err := buildInventory(cmd.Context(), buildRequest{})
			if err != nil {
				return err
			}
			if hostName != "" {
				vars := inventory.HostVars(result.Inventory, hostName)
				if err := output.RenderHost(cmd.OutOrStdout(), vars, output.ModeJSON); err != nil {
					return exit.New(exit.Usage, err)
				}
				return nil
			}
			if err := output.RenderInventory(cmd.OutOrStdout(), result.Inventory, output.InventoryOptions{Mode: output.ModeJSON}); err != nil {
				return exit.New(exit.Usage, fmt.Errorf("render inventory: %w", err))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "i", "", "path to the udf inventory source file (env "+envConfig+")")
	cmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "UDF metadata service URL (env "+envEndpoint+")")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text|json")

	cmd.Flags().BoolVar(&listAll, "list", false, "print the whole inventory as Ansible expects")
	cmd.Flags().StringVar(&hostName, "host", "", "print the variables of a single host")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newHostCmd())
	cmd.AddCommand(newPublishCmd())

	return cmd
}
