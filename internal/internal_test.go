package internal

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel(t *testing.T) {
	defer func() {
		SetDebug(false)
		SetQuiet(false)
	}()

	SetDebug(false)
	SetQuiet(false)
	if got := LogLevel(); got != slog.LevelInfo {
		t.Fatalf("LogLevel = %v, want INFO", got)
	}

	SetQuiet(true)
	if got := LogLevel(); got != slog.LevelWarn {
		t.Fatalf("LogLevel = %v, want WARN", got)
	}

	SetDebug(true)
	if got := LogLevel(); got != slog.LevelDebug {
		t.Fatalf("debug should win over quiet, got %v", got)
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	defer SetQuiet(false)
	SetQuiet(true)

	var buf bytes.Buffer
	logger := NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "target", "darwin/arm64")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record logged in quiet mode: %q", out)
	}
	if !strings.Contains(out, "target=darwin/arm64") || !strings.Contains(out, "app=xpack") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestVersionStringLocal(t *testing.T) {
	saved := version
	defer func() { version = saved }()

	version = ""
	if got := VersionString(); got != "(local)" {
		t.Fatalf("VersionString = %q, want (local)", got)
	}
}

func TestVersionString(t *testing.T) {
	savedV, savedS, savedC := version, stage, gitCommit
	defer func() { version, stage, gitCommit = savedV, savedS, savedC }()

	version, stage, gitCommit = "V1.2.3", "main", "abc123"
	if got := VersionString(); !strings.HasPrefix(got, "1.2.3 abc123 [") {
		t.Fatalf("VersionString = %q", got)
	}

	stage = "Beta"
	if got := VersionString(); !strings.HasPrefix(got, "1.2.3+beta abc123 [") {
		t.Fatalf("VersionString = %q", got)
	}
}
