package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/goldyfruit/udf-inventory/internal/config"
	"github.com/goldyfruit/udf-inventory/internal/exit"
	"github.com/goldyfruit/udf-inventory/internal/extract"
	"github.com/goldyfruit/udf-inventory/internal/inventory"
	"github.com/goldyfruit/udf-inventory/internal/logging"
	"github.com/goldyfruit/udf-inventory/internal/selector"
	"github.com/goldyfruit/udf-inventory/internal/types"
	"github.com/goldyfruit/udf-inventory/internal/udf"
)

const (
	envEndpoint = "UDF_METADATA_URL"
	envConfig   = "UDF_INVENTORY_CONFIG"
)

type buildRequest struct {
	Hostnames []string
	Groups    []string
	Selector  string
}

type buildResult struct {
	Inventory *inventory.Inventory
	Stats     inventory.Stats
	URL       string
}

// buildInventory merges flags, environment and the config file, fetches the
// deployment once and returns the (optionally filtered) inventory.
func buildInventory(ctx context.Context, req buildRequest) (buildResult, error) {
	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return buildResult{}, exit.New(exit.Usage, err)
	}
	logger := logging.New(verbose, format)

	cfg, err := loadConfig()
	if err != nil {
		return buildResult{}, exit.New(exit.Usage, err)
	}

	hostSelector, err := selector.Parse(req.Selector)
	if err != nil {
		return buildResult{}, exit.New(exit.Usage, err)
	}

	hostnames := req.Hostnames
	if len(hostnames) == 0 {
		hostnames = cfg.HostnamePreferences()
	}
	groups := req.Groups
	if len(groups) == 0 {
		groups = cfg.Groups
	}
	resolved := config.Resolve(
		firstNonEmpty(endpoint, os.Getenv(envEndpoint), cfg.Endpoint, udf.DefaultEndpoint),
		hostnames,
		groups,
		logger,
	)

	client, err := udf.NewClient(resolved.Endpoint, userAgent())
	if err != nil {
		return buildResult{}, exit.New(exit.Usage, err)
	}
	logger.Debug("fetching deployment", logger.Args("url", client.URL(), "config", cfg.Path))

	inv, stats, err := inventory.Run(ctx, client, resolved.Options, extract.New(logger))
	if err != nil {
		return buildResult{}, exit.New(exit.Upstream, err)
	}
	logger.Debug("inventory built", logger.Args(
		"components", stats.Components,
		"hosts", inv.Len(),
		"skipped", stats.Skipped,
	))

	if !hostSelector.Empty() {
		inv = inv.Filter(func(host types.InventoryHost) bool {
			return selector.MatchHost(hostSelector, host)
		})
		logger.Debug("hosts filtered", logger.Args("selector", hostSelector.String(), "hosts", inv.Len()))
	}

	return buildResult{Inventory: inv, Stats: stats, URL: client.URL()}, nil
}

func loadConfig() (config.Config, error) {
	path := firstNonEmpty(configPath, os.Getenv(envConfig))
	if path == "" {
		return config.Config{}, nil
	}
	return config.Load(path)
}

func userAgent() string {
	return fmt.Sprintf("udf-inventory/%s Go %s", Version, runtime.Version())
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
