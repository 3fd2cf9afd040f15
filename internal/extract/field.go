package extract

import "strings"

// Field names one attribute that can be pulled out of a component record.
type Field int

const (
	FieldUnknown Field = iota
	FieldPrivateIPv4
	FieldPublicIPv4
	FieldInternalSSHPort
	FieldName
	FieldID
	FieldOSName
	FieldOSNameForGroup
	FieldHostname
	FieldDeployment
)

var fieldNames = map[Field]string{
	FieldPrivateIPv4:     "private_ipv4",
	FieldPublicIPv4:      "public_ipv4",
	FieldInternalSSHPort: "internal_ssh_port",
	FieldName:            "name",
	FieldID:              "id",
	FieldOSName:          "os_name",
	FieldOSNameForGroup:  "os_name_for_group",
	FieldHostname:        "hostname",
	FieldDeployment:      "deployment",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseField maps a configuration identifier to its Field.
func ParseField(raw string) Field {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for field, name := range fieldNames {
		if name == raw {
			return field
		}
	}
	return FieldUnknown
}

// HostnameSource reports whether the field may name an inventory host.
func (f Field) HostnameSource() bool {
	switch f {
	case FieldPrivateIPv4, FieldPublicIPv4, FieldID, FieldHostname:
		return true
	default:
		return false
	}
}

// Dimension names a rule deriving a group label from a component record.
type Dimension int

const (
	DimensionUnknown Dimension = iota
	DimensionOS
)

func (d Dimension) String() string {
	switch d {
	case DimensionOS:
		return "os"
	default:
		return "unknown"
	}
}

func ParseDimension(raw string) Dimension {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "os":
		return DimensionOS
	default:
		return DimensionUnknown
	}
}
