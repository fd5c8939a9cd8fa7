package logger

import (
	"bytes"
	"os"
	"testing"
)

func resetAfter(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
}

func TestSetVerbose(t *testing.T) {
	resetAfter(t)

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	resetAfter(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("ingested %s", "notes.txt")

	got := buf.String()
	if got != "[DEBUG] ingested notes.txt\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenQuiet(t *testing.T) {
	resetAfter(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestInfoWarnSection(t *testing.T) {
	resetAfter(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("loaded %d documents", 3)
	Warn("request failed")
	Section("QA Request")

	got := buf.String()
	for _, want := range []string{"[INFO] loaded 3 documents\n", "[WARN] request failed\n", "=== QA Request ===\n"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}
