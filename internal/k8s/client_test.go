package k8s

import (
	"context"
	"errors"
	"testing"

	v1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

func TestApplyConfigMapLifecycle(t *testing.T) {
	clientset := fake.NewSimpleClientset()
	client := NewClientWithInterface(clientset)
	ctx := context.Background()
	data := map[string]string{"inventory.json": `{"all":{}}`}
	annotations := map[string]string{"udf-inventory/source": "http://metadata.udf/deployment"}

	outcome, err := client.ApplyConfigMap(ctx, "automation", "udf-inventory", data, annotations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeCreated {
		t.Fatalf("expected created, got %s", outcome)
	}

	outcome, err = client.ApplyConfigMap(ctx, "automation", "udf-inventory", data, annotations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeUnchanged {
		t.Fatalf("expected unchanged, got %s", outcome)
	}

	changed := map[string]string{"inventory.json": `{"all":{"children":["ungrouped"]}}`}
	outcome, err = client.ApplyConfigMap(ctx, "automation", "udf-inventory", changed, annotations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeUpdated {
		t.Fatalf("expected updated, got %s", outcome)
	}

	stored, err := clientset.CoreV1().ConfigMaps("automation").Get(ctx, "udf-inventory", metav1.GetOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Data["inventory.json"] != changed["inventory.json"] {
		t.Fatalf("expected updated data, got %v", stored.Data)
	}
	if stored.Labels[ManagedByLabel] != ManagedByValue {
		t.Fatalf("expected managed-by label, got %v", stored.Labels)
	}
	if stored.Annotations["udf-inventory/source"] != annotations["udf-inventory/source"] {
		t.Fatalf("expected source annotation, got %v", stored.Annotations)
	}
}

func TestApplyConfigMapAdoptsExisting(t *testing.T) {
	existing := &v1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "udf-inventory", Namespace: "automation", Labels: map[string]string{"team": "lab"}},
		Data:       map[string]string{"inventory.json": "{}"},
	}
	clientset := fake.NewSimpleClientset(existing)
	client := NewClientWithInterface(clientset)

	outcome, err := client.ApplyConfigMap(context.Background(), "automation", "udf-inventory", map[string]string{"inventory.json": "{}"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeUpdated {
		t.Fatalf("expected updated to add label, got %s", outcome)
	}
	stored, _ := clientset.CoreV1().ConfigMaps("automation").Get(context.Background(), "udf-inventory", metav1.GetOptions{})
	if stored.Labels["team"] != "lab" || stored.Labels[ManagedByLabel] != ManagedByValue {
		t.Fatalf("expected labels merged, got %v", stored.Labels)
	}
}

func TestApplyConfigMapForbidden(t *testing.T) {
	clientset := fake.NewSimpleClientset()
	clientset.PrependReactor("get", "configmaps", func(action k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, k8serrors.NewForbidden(schema.GroupResource{Resource: "configmaps"}, "udf-inventory", errors.New("denied"))
	})
	client := NewClientWithInterface(clientset)

	_, err := client.ApplyConfigMap(context.Background(), "automation", "udf-inventory", map[string]string{}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != ErrForbidden {
		t.Fatalf("expected forbidden API error, got %v", err)
	}
}
