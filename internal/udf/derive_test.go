package udf

import "testing"

func TestDeploymentURLDefault(t *testing.T) {
	url, err := DeploymentURL("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "http://metadata.udf/deployment"
	if url != expected {
		t.Fatalf("expected %s, got %s", expected, url)
	}
}

func TestDeploymentURLSubpath(t *testing.T) {
	cases := map[string]string{
		"http://127.0.0.1:8080":             "http://127.0.0.1:8080/deployment",
		"http://metadata.udf/":              "http://metadata.udf/deployment",
		"https://lab.example.com/udf/":      "https://lab.example.com/udf/deployment",
		"http://metadata.udf/deployment":    "http://metadata.udf/deployment",
		"http://metadata.udf/?debug=1#frag": "http://metadata.udf/deployment",
	}
	for raw, want := range cases {
		got, err := DeploymentURL(raw)
		if err != nil {
			t.Fatalf("DeploymentURL(%q) unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("DeploymentURL(%q)=%q want %q", raw, got, want)
		}
	}
}

func TestDeploymentURLInvalid(t *testing.T) {
	if _, err := DeploymentURL("metadata.udf"); err == nil {
		t.Fatalf("expected error for URL without scheme")
	}
}
