package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, true, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	// JSON output should contain braces
	if !strings.Contains(output, "{") {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	if !Verbose {
		t.Error("Verbose flag should be true after Setup(true, ...)")
	}

	Debug("debug message")

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Debug message should appear in verbose mode, got: %s", output)
	}
}

func TestSetup_NonVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	if Verbose {
		t.Error("Verbose flag should be false after Setup(false, ...)")
	}

	Debug("debug message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("Debug message should NOT appear in non-verbose mode, got: %s", output)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	logger := With("component", "pager")
	if logger == nil {
		t.Fatal("With() returned nil")
	}

	logger.Info("with test")

	output := buf.String()
	if !strings.Contains(output, "with test") {
		t.Errorf("Expected 'with test' in output, got: %s", output)
	}
	if !strings.Contains(output, "component") {
		t.Errorf("Expected 'component' in output, got: %s", output)
	}
}

func TestUserOutputRouting(t *testing.T) {
	var out, errOut bytes.Buffer
	SetUserOutput(&out, &errOut)
	defer SetUserOutput(os.Stdout, os.Stderr)

	UserInfo("listing %d devboxes", 3)
	UserSuccess("devbox %s created", "dbx-1")
	UserWarning("config missing")
	UserError("shutdown failed")

	stdout := out.String()
	stderr := errOut.String()

	if !strings.Contains(stdout, "ℹ listing 3 devboxes") {
		t.Errorf("Expected info on stdout, got: %q", stdout)
	}
	if !strings.Contains(stdout, "✓ devbox dbx-1 created") {
		t.Errorf("Expected success on stdout, got: %q", stdout)
	}
	if !strings.Contains(stderr, "⚠ config missing") {
		t.Errorf("Expected warning on stderr, got: %q", stderr)
	}
	if !strings.Contains(stderr, "✗ shutdown failed") {
		t.Errorf("Expected error on stderr, got: %q", stderr)
	}
	if strings.Contains(stdout, "⚠") || strings.Contains(stdout, "✗") {
		t.Errorf("Warnings and errors must not hit stdout, got: %q", stdout)
	}
}

func TestSetup_NilWriter(t *testing.T) {
	// Should not panic with nil writer
	Setup(false, false, nil)

	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}
