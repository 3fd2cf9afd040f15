package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goldyfruit/udf-inventory/internal/extract"
	"github.com/goldyfruit/udf-inventory/internal/inventory"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Plugin identifiers accepted in the plugin key.
var Plugins = []string{"udf", "community.general.udf"}

// Config mirrors the YAML inventory source file.
type Config struct {
	Plugin    string     `yaml:"plugin"`
	Hostname  string     `yaml:"hostname,omitempty"`
	Hostnames StringList `yaml:"hostnames,omitempty"`
	Groups    StringList `yaml:"groups,omitempty"`
	Endpoint  string     `yaml:"endpoint,omitempty"`
	Path      string     `yaml:"-"`
}

// StringList accepts either a YAML sequence or a single scalar.
type StringList []string

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

// Error reports an unusable configuration file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("invalid configuration %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Path: path, Err: err}
	}
	cfg, err := Parse(content)
	if err != nil {
		return Config{}, &Error{Path: path, Err: err}
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(content []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("empty configuration")
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the plugin discriminator and mutually exclusive keys.
func (c Config) Validate() error {
	plugin := strings.TrimSpace(c.Plugin)
	if plugin == "" {
		return fmt.Errorf("plugin is required (one of %s)", strings.Join(Plugins, ", "))
	}
	if !isKnownPlugin(plugin) {
		return fmt.Errorf("unsupported plugin %q (one of %s)", plugin, strings.Join(Plugins, ", "))
	}
	if c.Hostname != "" && len(c.Hostnames) > 0 {
		return fmt.Errorf("hostname and hostnames are mutually exclusive")
	}
	return nil
}

// HostnamePreferences returns the configured preference names in order.
func (c Config) HostnamePreferences() []string {
	if c.Hostname != "" {
		return []string{c.Hostname}
	}
	return c.Hostnames
}

// Resolved holds the pipeline options derived from a configuration.
type Resolved struct {
	Endpoint string
	Options  inventory.Options
}

// Resolve turns preference names into fields and dimensions. Unknown names
// are reported through logger and dropped.
func Resolve(endpoint string, hostnames, groups []string, logger *pterm.Logger) Resolved {
	resolved := Resolved{Endpoint: endpoint}
	for _, raw := range hostnames {
		field := extract.ParseField(raw)
		if !field.HostnameSource() {
			logger.Warn("ignoring unknown hostname preference", logger.Args("preference", raw))
			continue
		}
		resolved.Options.Hostnames = append(resolved.Options.Hostnames, field)
	}
	if len(resolved.Options.Hostnames) == 0 {
		if len(hostnames) > 0 {
			logger.Warn("no usable hostname preference, falling back to default",
				logger.Args("default", inventory.DefaultHostnames[0].String()))
		}
		resolved.Options.Hostnames = append([]extract.Field(nil), inventory.DefaultHostnames...)
	}
	for _, raw := range groups {
		dim := extract.ParseDimension(raw)
		if dim == extract.DimensionUnknown {
			logger.Warn("invalid group name specified", logger.Args("group", raw))
			continue
		}
		resolved.Options.Groups = append(resolved.Options.Groups, dim)
	}
	return resolved
}

func isKnownPlugin(value string) bool {
	for _, plugin := range Plugins {
		if plugin == value {
			return true
		}
	}
	return false
}
