package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(3) // debug level
	l.SetOutput(&buf)
	l.SetTimestamps(false)

	l.Error("e")
	l.Warn("w")
	l.Info("i")
	l.Verbose("v")
	l.Debug("d")

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), output)
	}

	wantPrefixes := []string{"[ERR]", "[WRN]", "[INF]", "[VRB]", "[DBG]"}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d %q missing prefix %q", i, lines[i], prefix)
		}
	}
}

func TestLogger_QuietMode(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(0)
	l.SetOutput(&buf)

	l.Info("should not appear")
	l.Verbose("should not appear")
	l.Debug("should not appear")
	l.Error("always appears")

	if got, want := buf.String(), "[ERR] always appears\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLogger_VerboseHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(2)
	l.SetOutput(&buf)

	l.Verbose("line %d skipped", 3)
	l.Debug("hidden")

	if got, want := buf.String(), "[VRB] line 3 skipped\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLogger_Timestamps(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(1)
	l.SetOutput(&buf)
	l.SetTimestamps(true)

	l.Info("test")

	output := buf.String()
	// Timestamp format is "HH:MM:SS.mmm"
	if !strings.Contains(output, ":") || !strings.HasSuffix(output, "[INF] test\n") || len(output) < 15 {
		t.Errorf("expected timestamp prefix, got %q", output)
	}
}

func TestLogger_DebugEnablesTimestamps(t *testing.T) {
	if l := NewLogger(3); !l.timestamps {
		t.Error("debug level should enable timestamps")
	}
	if l := NewLogger(2); l.timestamps {
		t.Error("verbose level should not enable timestamps")
	}
}

func TestLogger_Enabled(t *testing.T) {
	l := NewLogger(2)
	if !l.Enabled(LogVerbose) || l.Enabled(LogDebug) {
		t.Errorf("Enabled mismatch at level %d", l.Level())
	}
}

func TestLogger_Nil(t *testing.T) {
	var l *Logger
	l.Error("must not panic")
	l.Info("must not panic")
}
