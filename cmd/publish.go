package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/goldyfruit/udf-inventory/internal/exit"
	"github.com/goldyfruit/udf-inventory/internal/inventory"
	"github.com/goldyfruit/udf-inventory/internal/k8s"
	"github.com/goldyfruit/udf-inventory/internal/output"
	"github.com/spf13/cobra"
)

const (
	annotationSource = "udf-inventory/source"
	annotationHosts  = "udf-inventory/hosts"
)

func newPublishCmd() *cobra.Command {
	var (
		kubeconfigPath string
		kubeContext    string
		namespace      string
		name           string
		selectorRaw    string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Store the inventory in a Kubernetes ConfigMap",
		RunE: func(cmd *cobra.Command, args []string) error {
			kubeConfig, info, err := k8s.ResolveKubeconfig(kubeconfigPath, kubeContext, namespace)
			if err != nil {
				return exit.New(exit.Usage, err)
			}
			if verbose {
				fmt.Fprintln(os.Stderr, k8s.DescribeKubeconfig(info))
			}
			client, err := k8s.NewClient(kubeConfig)
			if err != nil {
				return exit.New(exit.Usage, err)
			}

			result, err := buildInventory(cmd.Context(), buildRequest{Selector: selectorRaw})
			if err != nil {
				return err
			}
			data, err := renderConfigMapData(result.Inventory)
			if err != nil {
				return exit.New(exit.Usage, err)
			}
			annotations := map[string]string{
				annotationSource: result.URL,
				annotationHosts:  strconv.Itoa(result.Inventory.Len()),
			}

			outcome, err := client.ApplyConfigMap(cmd.Context(), info.Namespace, name, data, annotations)
			if err != nil {
				return exit.New(exit.Upstream, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configmap %s/%s %s (%d hosts)\n", info.Namespace, name, outcome, result.Inventory.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "path to kubeconfig file")
	cmd.Flags().StringVar(&kubeContext, "context", "", "kubeconfig context to use")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "target namespace (defaults to the context namespace)")
	cmd.Flags().StringVar(&name, "name", "udf-inventory", "ConfigMap name")
	cmd.Flags().StringVar(&selectorRaw, "selector", "", "label selector matched against host variables")

	return cmd
}

func renderConfigMapData(inv *inventory.Inventory) (map[string]string, error) {
	jsonBuf := &bytes.Buffer{}
	if err := output.EmitJSON(jsonBuf, inventory.ListDocument(inv)); err != nil {
		return nil, fmt.Errorf("render inventory.json: %w", err)
	}
	yamlBuf := &bytes.Buffer{}
	if err := output.EmitYAML(yamlBuf, inventory.YAMLDocument(inv)); err != nil {
		return nil, fmt.Errorf("render inventory.yaml: %w", err)
	}
	return map[string]string{
		"inventory.json": jsonBuf.String(),
		"inventory.yaml": yamlBuf.String(),
	}, nil
}
