package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{"": FormatText, "text": FormatText, "json": FormatJSON} {
		got, err := ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q)=%s,%v want %s", raw, got, err, want)
		}
	}
	if _, err := ParseFormat("logfmt"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestNewWithWriterLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithWriter(buf, false, FormatJSON)
	logger.Debug("hidden")
	logger.Warn("shown", logger.Args("path", "mgmtIp"))
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("expected debug suppressed without verbose, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"path":"mgmtIp"`) {
		t.Fatalf("expected structured warning, got %q", buf.String())
	}

	buf.Reset()
	NewWithWriter(buf, true, FormatJSON).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected debug output when verbose, got %q", buf.String())
	}
}
