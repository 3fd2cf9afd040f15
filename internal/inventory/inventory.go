package inventory

import (
	"github.com/goldyfruit/udf-inventory/internal/types"
)

// Sink receives hosts, variables and group memberships. Every operation is
// idempotent; repeated writes overwrite earlier ones.
type Sink interface {
	AddHost(name string)
	SetVariable(host, key string, value any)
	AddGroup(name string)
	AddHostToGroup(group, host string)
}

// Inventory is an in-memory Sink that preserves insertion order.
type Inventory struct {
	hostOrder  []string
	vars       map[string]map[string]any
	groupOrder []string
	members    map[string][]string
}

func New() *Inventory {
	return &Inventory{
		vars:    map[string]map[string]any{},
		members: map[string][]string{},
	}
}

func (inv *Inventory) AddHost(name string) {
	if _, ok := inv.vars[name]; ok {
		return
	}
	inv.vars[name] = map[string]any{}
	inv.hostOrder = append(inv.hostOrder, name)
}

func (inv *Inventory) SetVariable(host, key string, value any) {
	inv.AddHost(host)
	inv.vars[host][key] = value
}

func (inv *Inventory) AddGroup(name string) {
	if _, ok := inv.members[name]; ok {
		return
	}
	inv.members[name] = []string{}
	inv.groupOrder = append(inv.groupOrder, name)
}

func (inv *Inventory) AddHostToGroup(group, host string) {
	inv.AddGroup(group)
	inv.AddHost(host)
	for _, member := range inv.members[group] {
		if member == host {
			return
		}
	}
	inv.members[group] = append(inv.members[group], host)
}

func (inv *Inventory) Len() int {
	return len(inv.hostOrder)
}

// Hosts returns every host with a copy of its variables and the groups it
// belongs to, in registration order.
func (inv *Inventory) Hosts() []types.InventoryHost {
	out := make([]types.InventoryHost, 0, len(inv.hostOrder))
	for _, name := range inv.hostOrder {
		host, _ := inv.Host(name)
		out = append(out, host)
	}
	return out
}

func (inv *Inventory) Host(name string) (types.InventoryHost, bool) {
	vars, ok := inv.vars[name]
	if !ok {
		return types.InventoryHost{}, false
	}
	host := types.InventoryHost{Name: name, Vars: make(map[string]any, len(vars))}
	for key, value := range vars {
		host.Vars[key] = value
	}
	for _, group := range inv.groupOrder {
		for _, member := range inv.members[group] {
			if member == name {
				host.Groups = append(host.Groups, group)
				break
			}
		}
	}
	return host, true
}

// Groups returns group names in creation order.
func (inv *Inventory) Groups() []string {
	return append([]string(nil), inv.groupOrder...)
}

// Members returns the hosts of group in insertion order.
func (inv *Inventory) Members(group string) []string {
	return append([]string(nil), inv.members[group]...)
}

// Ungrouped returns hosts that belong to no group.
func (inv *Inventory) Ungrouped() []string {
	grouped := map[string]struct{}{}
	for _, members := range inv.members {
		for _, host := range members {
			grouped[host] = struct{}{}
		}
	}
	var out []string
	for _, host := range inv.hostOrder {
		if _, ok := grouped[host]; !ok {
			out = append(out, host)
		}
	}
	return out
}

// Filter returns a new Inventory holding the hosts keep accepts. Groups are
// kept even when they end up empty.
func (inv *Inventory) Filter(keep func(types.InventoryHost) bool) *Inventory {
	out := New()
	for _, host := range inv.Hosts() {
		if !keep(host) {
			continue
		}
		out.AddHost(host.Name)
		for key, value := range host.Vars {
			out.SetVariable(host.Name, key, value)
		}
	}
	for _, group := range inv.groupOrder {
		out.AddGroup(group)
		for _, member := range inv.members[group] {
			if _, ok := out.vars[member]; ok {
				out.AddHostToGroup(group, member)
			}
		}
	}
	return out
}
