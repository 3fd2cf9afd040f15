package udf

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultEndpoint = "http://metadata.udf"
	DeploymentPath  = "deployment"
)

// DeploymentURL joins the deployment resource onto the metadata base URL.
func DeploymentURL(base string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		base = DefaultEndpoint
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid metadata URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid metadata URL: %s", base)
	}
	path := strings.TrimSuffix(parsed.Path, "/")
	if !strings.HasSuffix(path, "/"+DeploymentPath) {
		path += "/" + DeploymentPath
	}
	parsed.Path = path
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String(), nil
}
