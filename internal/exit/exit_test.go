package exit

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	cause := errors.New("metadata API error")
	wrapped := fmt.Errorf("build inventory: %w", New(Upstream, cause))

	if Code(nil) != 0 {
		t.Fatalf("expected 0 for nil error")
	}
	if Code(errors.New("plain")) != Usage {
		t.Fatalf("expected usage code for plain error")
	}
	if Code(wrapped) != Upstream {
		t.Fatalf("expected upstream code, got %d", Code(wrapped))
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected cause to be reachable through the exit error")
	}
	if wrapped.Error() != "build inventory: metadata API error" {
		t.Fatalf("unexpected message: %s", wrapped.Error())
	}
}
