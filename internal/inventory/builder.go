package inventory

import (
	"context"

	"github.com/goldyfruit/udf-inventory/internal/extract"
	"github.com/goldyfruit/udf-inventory/internal/types"
)

// Host variable names.
const (
	VarPrivateIPv4     = "private_ipv4"
	VarInternalSSHPort = "internal_ssh_port"
	VarName            = "name"
	VarID              = "id"
	VarOSName          = "os_name"
)

var DefaultHostnames = []extract.Field{extract.FieldPrivateIPv4}

type Options struct {
	Hostnames []extract.Field
	Groups    []extract.Dimension
}

// Fetcher returns the component records of one deployment.
type Fetcher interface {
	FetchDeployment(ctx context.Context) ([]types.Component, error)
}

type Stats struct {
	Components int
	Registered int
	Skipped    int
}

// Run fetches the deployment and builds a fresh inventory from it. A fetch
// failure yields no inventory at all.
func Run(ctx context.Context, fetcher Fetcher, opts Options, ex *extract.Extractor) (*Inventory, Stats, error) {
	components, err := fetcher.FetchDeployment(ctx)
	if err != nil {
		return nil, Stats{}, err
	}
	inv := New()
	stats := Build(components, opts, inv, ex)
	return inv, stats, nil
}

// Build registers one host per component that resolves to a hostname.
// Components without a hostname leave no trace in the sink. Group
// dimensions are resolved independently: an absent label only skips that
// dimension.
func Build(components []types.Component, opts Options, sink Sink, ex *extract.Extractor) Stats {
	if ex == nil {
		ex = extract.New(nil)
	}
	hostnames := opts.Hostnames
	if len(hostnames) == 0 {
		hostnames = DefaultHostnames
	}

	stats := Stats{Components: len(components)}
	for _, rec := range components {
		hostname, ok := ex.Hostname(rec, hostnames)
		if !ok {
			stats.Skipped++
			continue
		}

		sink.AddHost(hostname)
		fillHostVariables(sink, ex, hostname, rec)
		stats.Registered++

		for _, dim := range opts.Groups {
			group, ok := ex.Group(rec, dim)
			if !ok {
				continue
			}
			sink.AddGroup(group)
			sink.AddHostToGroup(group, hostname)
		}
	}
	return stats
}

func fillHostVariables(sink Sink, ex *extract.Extractor, hostname string, rec types.Component) {
	if value, ok := ex.PrivateIPv4(rec); ok {
		sink.SetVariable(hostname, VarPrivateIPv4, value)
	}
	if value, ok := ex.InternalSSHPort(rec); ok {
		sink.SetVariable(hostname, VarInternalSSHPort, value)
	}
	if value, ok := ex.Name(rec); ok {
		sink.SetVariable(hostname, VarName, value)
	}
	if value, ok := ex.ID(rec); ok {
		sink.SetVariable(hostname, VarID, value)
	}
	if value, ok := ex.OSName(rec); ok {
		sink.SetVariable(hostname, VarOSName, value)
	}
}
