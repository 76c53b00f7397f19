package logging

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestLoggerWritesLevelsAndStages(t *testing.T) {
	l, err := Setup(t.TempDir(), true, false)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	l.Stage("detection")
	l.Info("probing input.mp4")
	l.Debug("duration 10s")
	l.Scene(2, 5, "3 segments")
	l.Warn("slow decode")
	l.Error("cut failed")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(l.FilePath())
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, want := range []string{
		"===== DETECTION =====",
		"[INFO] probing input.mp4",
		"[DEBUG] duration 10s",
		"[DEBUG] Scene 2/5: 3 segments",
		"[WARN] slow decode",
		"[ERROR] cut failed",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
}

func TestLoggerInfoLevelSuppressesDebug(t *testing.T) {
	l, err := Setup(t.TempDir(), false, false)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	l.Debug("hidden")
	l.Scene(1, 1, "hidden")
	l.Info("visible")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(l.FilePath())
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if strings.Contains(content, "hidden") {
		t.Errorf("debug output written at info level:\n%s", content)
	}
	if !strings.Contains(content, "[INFO] visible") {
		t.Errorf("info output missing:\n%s", content)
	}
}

func TestSetupNoLog(t *testing.T) {
	l, err := Setup(t.TempDir(), false, true)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if l != nil {
		t.Errorf("Setup() = %v, want nil logger when logging is disabled", l)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Stage("detection")
	l.Info("x")
	l.Debug("x")
	l.Scene(1, 1, "x")
	l.Warn("x")
	l.Error("x")
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if l.FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", l.FilePath())
	}
	if l.Writer() != io.Discard {
		t.Error("Writer() should discard for a nil logger")
	}
}
