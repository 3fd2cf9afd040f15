package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/goldyfruit/udf-inventory/internal/inventory"
	"github.com/goldyfruit/udf-inventory/internal/types"
	"github.com/pterm/pterm"
)

type InventoryOptions struct {
	Mode     Mode
	Endpoint string
	Stats    inventory.Stats
}

// RenderInventory writes the inventory as an Ansible --list document (json),
// an Ansible YAML inventory (yaml) or a host table.
func RenderInventory(w io.Writer, inv *inventory.Inventory, opts InventoryOptions) error {
	switch opts.Mode {
	case ModeYAML:
		return EmitYAML(w, inventory.YAMLDocument(inv))
	case ModeTable:
		return renderInventoryTable(w, inv, opts)
	default:
		return EmitJSON(w, inventory.ListDocument(inv))
	}
}

// RenderHost writes the variables of one host, as Ansible expects from
// --host.
func RenderHost(w io.Writer, vars map[string]any, mode Mode) error {
	if mode == ModeYAML {
		return EmitYAML(w, vars)
	}
	return EmitJSON(w, vars)
}

func renderInventoryTable(w io.Writer, inv *inventory.Inventory, opts InventoryOptions) error {
	InitStyles()
	fmt.Fprintln(w, renderSummaryBox(inv, opts))

	hosts := inv.Hosts()
	if len(hosts) == 0 {
		fmt.Fprintln(w, "No hosts found in the UDF deployment.")
		return nil
	}

	rows := [][]string{{"Host", "Name", "ID", "Private IPv4", "SSH Port", "OS", "Groups"}}
	for _, host := range hosts {
		rows = append(rows, []string{
			host.Name,
			varOrDash(host, inventory.VarName),
			varOrDash(host, inventory.VarID),
			varOrDash(host, inventory.VarPrivateIPv4),
			varOrDash(host, inventory.VarInternalSSHPort),
			varOrDash(host, inventory.VarOSName),
			valueOrDash(strings.Join(host.Groups, ",")),
		})
	}
	rendered, err := styledTable(rows).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, rendered)
	return err
}

func renderSummaryBox(inv *inventory.Inventory, opts InventoryOptions) string {
	lines := []string{}
	if opts.Endpoint != "" {
		lines = append(lines, pterm.FgGray.Sprint("Endpoint: ")+pterm.FgLightCyan.Sprint(opts.Endpoint))
	}
	stats := []string{
		metricBadge("Components", opts.Stats.Components, pterm.FgLightCyan),
		metricBadge("Hosts", inv.Len(), pterm.FgLightGreen),
		metricBadge("Skipped", opts.Stats.Skipped, pterm.FgLightYellow),
		metricBadge("Groups", len(inv.Groups()), pterm.FgLightMagenta),
	}
	lines = append(lines, strings.Join(stats, "  "))

	box := pterm.DefaultBox.WithTitle("udf-inventory").WithTitleTopCenter(true)
	box.BoxStyle = pterm.NewStyle(pterm.FgLightCyan)
	return box.Sprint(strings.Join(lines, "\n"))
}

func varOrDash(host types.InventoryHost, key string) string {
	value, ok := host.Vars[key]
	if !ok {
		return "-"
	}
	return valueOrDash(fmt.Sprintf("%v", value))
}

func valueOrDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func metricBadge(label string, value int, color pterm.Color) string {
	style := pterm.NewStyle(color, pterm.Bold)
	return style.Sprintf("%s: %d", label, value)
}

func styledTable(data [][]string) *pterm.TablePrinter {
	headerStyle := pterm.NewStyle(pterm.Bold, pterm.FgLightCyan)
	sepStyle := pterm.NewStyle(pterm.FgDarkGray)

	table := pterm.DefaultTable.WithHasHeader().WithData(data).WithBoxed(true)
	table.HeaderStyle = headerStyle
	table.SeparatorStyle = sepStyle
	table.HeaderRowSeparator = "-"
	table.HeaderRowSeparatorStyle = sepStyle
	return table
}
