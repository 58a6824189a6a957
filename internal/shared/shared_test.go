package shared

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	if first == "" || second == "" {
		t.Fatal("expected non-empty ids")
	}
	if first == second {
		t.Error("expected unique ids")
	}
	if len(strings.Split(first, "-")) != 5 {
		t.Errorf("expected UUID shape, got %q", first)
	}
}

func TestMarshalJSON(t *testing.T) {
	data := map[string]string{"key": "value"}

	t.Run("compact", func(t *testing.T) {
		out, err := MarshalJSON(data, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(out) != `{"key":"value"}` {
			t.Errorf("unexpected output: %s", out)
		}
	})

	t.Run("indented", func(t *testing.T) {
		out, err := MarshalJSON(data, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(string(out), "\n  ") {
			t.Errorf("expected indentation, got %s", out)
		}

		var decoded map[string]string
		if err := json.Unmarshal(out, &decoded); err != nil {
			t.Fatalf("output must stay valid JSON: %v", err)
		}
	})
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf)

	logger.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "value") {
		t.Errorf("expected structured log line, got %q", out)
	}
}
