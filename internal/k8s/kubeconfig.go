package k8s

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/client-go/tools/clientcmd"
)

// KubeconfigInfo describes where the publishing credentials came from.
type KubeconfigInfo struct {
	Source    string
	Paths     []string
	Context   string
	Namespace string
}

// ResolveKubeconfig loads the kubeconfig selected by the --kubeconfig flag,
// then KUBECONFIG, then the default location. The namespace comes from the
// override, else from the selected context, else "default".
func ResolveKubeconfig(explicitPath, contextOverride, namespaceOverride string) (clientcmd.ClientConfig, KubeconfigInfo, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	info := KubeconfigInfo{Source: "default"}

	switch {
	case explicitPath != "":
		info.Source = "flag"
		rules.ExplicitPath = expandPath(explicitPath)
		info.Paths = []string{rules.ExplicitPath}
	case os.Getenv("KUBECONFIG") != "":
		info.Source = "env"
		rules.Precedence = expandPaths(filepath.SplitList(os.Getenv("KUBECONFIG")))
		info.Paths = rules.Precedence
	default:
		info.Paths = expandPaths(rules.Precedence)
	}

	if !anyExists(info.Paths) {
		return nil, info, &ConfigError{Kind: ErrKubeconfigNotFound, Paths: info.Paths}
	}

	overrides := &clientcmd.ConfigOverrides{CurrentContext: contextOverride}
	if namespaceOverride != "" {
		overrides.Context.Namespace = namespaceOverride
	}
	clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides)

	raw, err := clientConfig.RawConfig()
	if err != nil {
		return nil, info, &ConfigError{Kind: ErrKubeconfigInvalid, Paths: info.Paths, Err: err}
	}
	info.Context = contextOverride
	if info.Context == "" {
		info.Context = raw.CurrentContext
	}
	if info.Context == "" {
		return nil, info, &ConfigError{Kind: ErrKubeconfigInvalid, Paths: info.Paths, Err: fmt.Errorf("missing current context")}
	}
	if _, ok := raw.Contexts[info.Context]; !ok {
		return nil, info, &ConfigError{Kind: ErrContextNotFound, Paths: info.Paths, Err: fmt.Errorf("context %q not found", info.Context)}
	}

	namespace, _, err := clientConfig.Namespace()
	if err != nil {
		return nil, info, &ConfigError{Kind: ErrKubeconfigInvalid, Paths: info.Paths, Err: err}
	}
	info.Namespace = namespace
	return clientConfig, info, nil
}

func DescribeKubeconfig(info KubeconfigInfo) string {
	paths := strings.Join(info.Paths, string(os.PathListSeparator))
	if paths == "" {
		paths = "(none)"
	}
	return fmt.Sprintf("kubeconfig source=%s paths=%s context=%s namespace=%s", info.Source, paths, info.Context, info.Namespace)
}

func anyExists(paths []string) bool {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func expandPaths(paths []string) []string {
	expanded := make([]string, 0, len(paths))
	for _, path := range paths {
		expanded = append(expanded, expandPath(path))
	}
	return expanded
}

func expandPath(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
