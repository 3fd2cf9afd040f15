package inventory

const (
	GroupAll       = "all"
	GroupUngrouped = "ungrouped"
)

type groupEntry struct {
	Hosts []string `json:"hosts,omitempty" yaml:"hosts,omitempty"`
}

type allEntry struct {
	Children []string `json:"children" yaml:"children"`
}

type metaEntry struct {
	Hostvars map[string]map[string]any `json:"hostvars" yaml:"hostvars"`
}

// ListDocument builds the document Ansible expects from a dynamic inventory
// invoked with --list.
func ListDocument(inv *Inventory) map[string]any {
	hostvars := make(map[string]map[string]any, inv.Len())
	for _, host := range inv.Hosts() {
		hostvars[host.Name] = host.Vars
	}

	children := inv.Groups()
	doc := map[string]any{
		"_meta": metaEntry{Hostvars: hostvars},
	}
	for _, group := range children {
		doc[group] = groupEntry{Hosts: inv.Members(group)}
	}
	doc[GroupUngrouped] = groupEntry{Hosts: inv.Ungrouped()}
	doc[GroupAll] = allEntry{Children: append(children, GroupUngrouped)}
	return doc
}

// YAMLDocument builds an Ansible YAML inventory: every host with its
// variables under all.hosts, and group memberships under all.children.
func YAMLDocument(inv *Inventory) map[string]any {
	hosts := map[string]any{}
	for _, host := range inv.Hosts() {
		hosts[host.Name] = host.Vars
	}
	all := map[string]any{"hosts": hosts}

	children := map[string]any{}
	for _, group := range inv.Groups() {
		members := map[string]any{}
		for _, host := range inv.Members(group) {
			members[host] = map[string]any{}
		}
		children[group] = map[string]any{"hosts": members}
	}
	if len(children) > 0 {
		all["children"] = children
	}
	return map[string]any{GroupAll: all}
}

// HostVars returns the variables of one host, or an empty map when the host
// is not in the inventory.
func HostVars(inv *Inventory, name string) map[string]any {
	host, ok := inv.Host(name)
	if !ok {
		return map[string]any{}
	}
	return host.Vars
}
