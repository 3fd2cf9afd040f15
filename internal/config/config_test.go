package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/goldyfruit/udf-inventory/internal/extract"
	"github.com/goldyfruit/udf-inventory/internal/logging"
)

func TestParseSingleHostname(t *testing.T) {
	cfg, err := Parse([]byte("plugin: udf\nhostname: private_ipv4\ngroups:\n  - os\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.HostnamePreferences(), []string{"private_ipv4"}) {
		t.Fatalf("unexpected hostname preferences: %v", cfg.HostnamePreferences())
	}
	if !reflect.DeepEqual([]string(cfg.Groups), []string{"os"}) {
		t.Fatalf("unexpected groups: %v", cfg.Groups)
	}
}

func TestParseHostnamesList(t *testing.T) {
	content := `plugin: community.general.udf
hostnames:
  - private_ipv4
  - id
endpoint: http://127.0.0.1:8080
`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.HostnamePreferences(), []string{"private_ipv4", "id"}) {
		t.Fatalf("unexpected hostname preferences: %v", cfg.HostnamePreferences())
	}
	if cfg.Endpoint != "http://127.0.0.1:8080" {
		t.Fatalf("unexpected endpoint: %s", cfg.Endpoint)
	}
}

func TestParseScalarLists(t *testing.T) {
	cfg, err := Parse([]byte("plugin: udf\nhostnames: id\ngroups: os\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.HostnamePreferences(), []string{"id"}) {
		t.Fatalf("unexpected hostname preferences: %v", cfg.HostnamePreferences())
	}
	if !reflect.DeepEqual([]string(cfg.Groups), []string{"os"}) {
		t.Fatalf("unexpected groups: %v", cfg.Groups)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing plugin": "hostname: id\n",
		"wrong plugin":   "plugin: aws_ec2\n",
		"both hostnames": "plugin: udf\nhostname: id\nhostnames: [private_ipv4]\n",
		"unknown key":    "plugin: udf\ncompose: {}\n",
		"bad groups":     "plugin: udf\ngroups: {os: true}\n",
	}
	for name, content := range cases {
		if _, err := Parse([]byte(content)); err == nil {
			t.Fatalf("%s: expected error, got nil", name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "udf.yml")
	if err := os.WriteFile(path, []byte("plugin: udf\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != path || cfg.Plugin != "udf" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yml")
	_, err := Load(path)
	var cfgErr *Error
	if !errors.As(err, &cfgErr) || cfgErr.Path != path {
		t.Fatalf("expected config error for %s, got %v", path, err)
	}
}

func TestResolve(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.NewWithWriter(buf, false, logging.FormatJSON)

	resolved := Resolve("http://metadata.udf", []string{"fqdn", "id", "private_ipv4"}, []string{"rpn", "os"}, logger)
	if !reflect.DeepEqual(resolved.Options.Hostnames, []extract.Field{extract.FieldID, extract.FieldPrivateIPv4}) {
		t.Fatalf("unexpected hostnames: %v", resolved.Options.Hostnames)
	}
	if !reflect.DeepEqual(resolved.Options.Groups, []extract.Dimension{extract.DimensionOS}) {
		t.Fatalf("unexpected groups: %v", resolved.Options.Groups)
	}
	if !strings.Contains(buf.String(), "fqdn") || !strings.Contains(buf.String(), "rpn") {
		t.Fatalf("expected warnings for unknown names, got %q", buf.String())
	}
}

func TestResolveDefaults(t *testing.T) {
	resolved := Resolve("", nil, nil, logging.Discard())
	if !reflect.DeepEqual(resolved.Options.Hostnames, []extract.Field{extract.FieldPrivateIPv4}) {
		t.Fatalf("expected private_ipv4 default, got %v", resolved.Options.Hostnames)
	}
	if len(resolved.Options.Groups) != 0 {
		t.Fatalf("expected no groups by default, got %v", resolved.Options.Groups)
	}
}
