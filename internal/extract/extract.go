package extract

import (
	"strings"

	"github.com/goldyfruit/udf-inventory/internal/logging"
	"github.com/goldyfruit/udf-inventory/internal/types"
	"github.com/goldyfruit/udf-inventory/internal/udf"
	"github.com/pterm/pterm"
)

// Record paths probed by the extractors.
const (
	PathMgmtIP          = "mgmtIp"
	PathInternalSSHPort = "accessMethods.ssh.0.internalPort"
	PathName            = "name"
	PathID              = "id"
	PathOSName          = "osName"
	PathDeploymentID    = "deployment.id"
)

var groupLabelReplacer = strings.NewReplacer(" ", "_", ".", "_")

// Extractor pulls attributes out of component records. Missing or malformed
// attributes are reported as warnings and yield an absent result.
type Extractor struct {
	log *pterm.Logger
}

func New(logger *pterm.Logger) *Extractor {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Extractor{log: logger}
}

// Extract returns the value of field for rec. Strings are returned for every
// field except FieldInternalSSHPort, which yields an int.
func (e *Extractor) Extract(field Field, rec types.Component) (any, bool) {
	switch field {
	case FieldPrivateIPv4:
		return e.PrivateIPv4(rec)
	case FieldPublicIPv4:
		return e.PublicIPv4(rec)
	case FieldInternalSSHPort:
		return e.InternalSSHPort(rec)
	case FieldName:
		return e.Name(rec)
	case FieldID, FieldHostname:
		return e.ID(rec)
	case FieldOSName:
		return e.OSName(rec)
	case FieldOSNameForGroup:
		return e.OSNameForGroup(rec)
	case FieldDeployment:
		return e.Deployment(rec)
	default:
		e.log.Warn("unknown attribute requested", e.log.Args("field", field.String()))
		return nil, false
	}
}

// PrivateIPv4 reads mgmtIp. The public address is read from the same field.
func (e *Extractor) PrivateIPv4(rec types.Component) (string, bool) {
	return e.stringAt(rec, PathMgmtIP, "private IPv4 address")
}

func (e *Extractor) PublicIPv4(rec types.Component) (string, bool) {
	return e.stringAt(rec, PathMgmtIP, "public IPv4 address")
}

// InternalSSHPort reads accessMethods.ssh[0].internalPort. Most components
// expose no SSH access method, so absence is never reported.
func (e *Extractor) InternalSSHPort(rec types.Component) (int, bool) {
	port, status := udf.IntAt(rec, PathInternalSSHPort)
	return port, status == udf.Present
}

func (e *Extractor) Name(rec types.Component) (string, bool) {
	return e.stringAt(rec, PathName, "name")
}

// ID reads id. It also backs the hostname field.
func (e *Extractor) ID(rec types.Component) (string, bool) {
	return e.stringAt(rec, PathID, "id")
}

func (e *Extractor) OSName(rec types.Component) (string, bool) {
	return e.stringAt(rec, PathOSName, "OS name")
}

// OSNameForGroup normalizes osName into a group label: lowercased, with
// spaces and periods replaced by underscores.
func (e *Extractor) OSNameForGroup(rec types.Component) (string, bool) {
	value, ok := e.stringAt(rec, PathOSName, "OS name for group")
	if !ok {
		return "", false
	}
	return strings.ToLower(groupLabelReplacer.Replace(value)), true
}

func (e *Extractor) Deployment(rec types.Component) (string, bool) {
	return e.stringAt(rec, PathDeploymentID, "deployment id")
}

func (e *Extractor) stringAt(rec types.Component, path, what string) (string, bool) {
	value, status := udf.StringAt(rec, path)
	switch status {
	case udf.Present:
		return value, true
	case udf.Missing, udf.Malformed:
		e.log.Warn("failed to extract "+what+", information skipped",
			e.log.Args("path", path, "reason", status.String(), "component", componentLabel(rec)))
	}
	return "", false
}

func componentLabel(rec types.Component) string {
	if rec == nil {
		return "(not an object)"
	}
	for _, path := range []string{PathID, PathName} {
		if value, status := udf.StringAt(rec, path); status == udf.Present {
			return value
		}
	}
	return "(unidentified)"
}
