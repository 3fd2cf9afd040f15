package types

// Component is one raw component record from the UDF deployment document.
// Entries that are not JSON objects decode to a nil Component.
type Component map[string]any

// InventoryHost is a normalized view of a registered inventory host.
type InventoryHost struct {
	Name   string         `json:"name" yaml:"name"`
	Vars   map[string]any `json:"vars" yaml:"vars"`
	Groups []string       `json:"groups,omitempty" yaml:"groups,omitempty"`
}
