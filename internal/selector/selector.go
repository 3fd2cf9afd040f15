package selector

import (
	"fmt"

	"github.com/goldyfruit/udf-inventory/internal/types"
	"k8s.io/apimachinery/pkg/labels"
)

// Parse parses a Kubernetes-style label selector.
func Parse(raw string) (labels.Selector, error) {
	if raw == "" {
		return labels.Everything(), nil
	}
	parsed, err := labels.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid host selector %q: %w", raw, err)
	}
	return parsed, nil
}

// HostSet exposes a host's variables as a label set.
func HostSet(host types.InventoryHost) labels.Set {
	set := make(labels.Set, len(host.Vars))
	for key, value := range host.Vars {
		set[key] = fmt.Sprintf("%v", value)
	}
	return set
}

// MatchHost reports whether the host's variables satisfy the selector.
func MatchHost(selector labels.Selector, host types.InventoryHost) bool {
	if selector == nil || selector.Empty() {
		return true
	}
	return selector.Matches(HostSet(host))
}
