package k8s

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	k8serrors "k8s.io/apimachinery/pkg/api/errors"
)

type ErrorKind string

const (
	ErrKubeconfigNotFound ErrorKind = "kubeconfig_not_found"
	ErrKubeconfigInvalid  ErrorKind = "kubeconfig_invalid"
	ErrContextNotFound    ErrorKind = "context_not_found"
	ErrAuthFailed         ErrorKind = "auth_failed"
	ErrForbidden          ErrorKind = "forbidden"
	ErrNamespaceNotFound  ErrorKind = "namespace_not_found"
	ErrConflict           ErrorKind = "conflict"
	ErrClusterUnreachable ErrorKind = "cluster_unreachable"
	ErrUnknown            ErrorKind = "unknown"
)

type ConfigError struct {
	Kind  ErrorKind
	Paths []string
	Err   error
}

func (e *ConfigError) Error() string {
	suffix := ""
	if len(e.Paths) > 0 {
		suffix = fmt.Sprintf(" (%s)", strings.Join(e.Paths, ", "))
	}
	switch e.Kind {
	case ErrKubeconfigNotFound:
		return fmt.Sprintf("kubeconfig not found%s", suffix)
	case ErrContextNotFound:
		return fmt.Sprintf("kubeconfig context not found%s: %v", suffix, e.Err)
	default:
		return fmt.Sprintf("invalid kubeconfig%s: %v", suffix, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// APIError reports a failed ConfigMap operation.
type APIError struct {
	Kind      ErrorKind
	Namespace string
	Name      string
	Err       error
}

func (e *APIError) Error() string {
	target := e.Namespace + "/" + e.Name
	switch e.Kind {
	case ErrAuthFailed:
		return "kubernetes authentication failed"
	case ErrForbidden:
		return fmt.Sprintf("not allowed to write configmap %s", target)
	case ErrNamespaceNotFound:
		return fmt.Sprintf("namespace %q not found", e.Namespace)
	case ErrConflict:
		return fmt.Sprintf("configmap %s was modified concurrently", target)
	case ErrClusterUnreachable:
		return "kubernetes cluster unreachable"
	default:
		return fmt.Sprintf("kubernetes API error on configmap %s: %v", target, e.Err)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func classifyK8sError(err error, namespace, name string) *APIError {
	if err == nil {
		return nil
	}
	apiErr := &APIError{Kind: ErrUnknown, Namespace: namespace, Name: name, Err: err}
	switch {
	case k8serrors.IsUnauthorized(err):
		apiErr.Kind = ErrAuthFailed
	case k8serrors.IsForbidden(err):
		apiErr.Kind = ErrForbidden
	case k8serrors.IsNotFound(err):
		apiErr.Kind = ErrNamespaceNotFound
	case k8serrors.IsConflict(err) || k8serrors.IsAlreadyExists(err):
		apiErr.Kind = ErrConflict
	case isUnreachable(err):
		apiErr.Kind = ErrClusterUnreachable
	}
	return apiErr
}

func isUnreachable(err error) bool {
	if errors.Is(err, net.ErrClosed) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	message := strings.ToLower(err.Error())
	for _, marker := range []string{"connection refused", "no such host", "i/o timeout", "context deadline exceeded"} {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}
