package k8s

import (
	"context"
	"maps"
	"time"

	v1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

const (
	ManagedByLabel = "app.kubernetes.io/managed-by"
	ManagedByValue = "udf-inventory"
)

type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
)

type Client struct {
	clientset kubernetes.Interface
}

func NewClient(clientConfig clientcmd.ClientConfig) (*Client, error) {
	config, err := clientConfig.ClientConfig()
	if err != nil {
		return nil, &ConfigError{Kind: ErrKubeconfigInvalid, Err: err}
	}
	config.Timeout = 15 * time.Second
	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, &APIError{Kind: ErrUnknown, Err: err}
	}
	return &Client{clientset: clientset}, nil
}

// NewClientWithInterface wraps an existing clientset.
func NewClientWithInterface(clientset kubernetes.Interface) *Client {
	return &Client{clientset: clientset}
}

// ApplyConfigMap creates the ConfigMap or replaces its data and annotations.
func (c *Client) ApplyConfigMap(ctx context.Context, namespace, name string, data, annotations map[string]string) (Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	configMaps := c.clientset.CoreV1().ConfigMaps(namespace)
	existing, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		desired := &v1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:        name,
				Namespace:   namespace,
				Labels:      map[string]string{ManagedByLabel: ManagedByValue},
				Annotations: annotations,
			},
			Data: data,
		}
		if _, err := configMaps.Create(ctx, desired, metav1.CreateOptions{}); err != nil {
			return "", classifyK8sError(err, namespace, name)
		}
		return OutcomeCreated, nil
	}
	if err != nil {
		return "", classifyK8sError(err, namespace, name)
	}

	if maps.Equal(existing.Data, data) && existing.Labels[ManagedByLabel] == ManagedByValue && annotationsMatch(existing.Annotations, annotations) {
		return OutcomeUnchanged, nil
	}

	updated := existing.DeepCopy()
	updated.Data = data
	if updated.Labels == nil {
		updated.Labels = map[string]string{}
	}
	updated.Labels[ManagedByLabel] = ManagedByValue
	if updated.Annotations == nil && len(annotations) > 0 {
		updated.Annotations = map[string]string{}
	}
	for key, value := range annotations {
		updated.Annotations[key] = value
	}
	if _, err := configMaps.Update(ctx, updated, metav1.UpdateOptions{}); err != nil {
		return "", classifyK8sError(err, namespace, name)
	}
	return OutcomeUpdated, nil
}

func annotationsMatch(existing, desired map[string]string) bool {
	for key, value := range desired {
		if existing[key] != value {
			return false
		}
	}
	return true
}
