package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
)

func TestMergeEnv(t *testing.T) {
	tests := []struct {
		name      string
		base      []string
		overrides []string
		want      []string
	}{
		{
			name:      "override existing key",
			base:      []string{"GOOS=linux", "HOME=/root"},
			overrides: []string{"GOOS=windows"},
			want:      []string{"GOOS=windows", "HOME=/root"},
		},
		{
			name:      "add new key",
			base:      []string{"HOME=/root"},
			overrides: []string{"GOARCH=arm64"},
			want:      []string{"GOARCH=arm64", "HOME=/root"},
		},
		{
			name:      "both empty",
			base:      nil,
			overrides: nil,
			want:      []string{},
		},
		{
			name:      "value with equals sign",
			base:      []string{"GOFLAGS=-tags=gui"},
			overrides: nil,
			want:      []string{"GOFLAGS=-tags=gui"},
		},
		{
			name:      "malformed entries skipped",
			base:      []string{"NOEQUALS", "A=1"},
			overrides: []string{"ALSO_BAD", "B=2"},
			want:      []string{"A=1", "B=2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeEnv(tt.base, tt.overrides)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("mergeEnv = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvocationArgs(t *testing.T) {
	inv := Invocation{Output: "dist/app.exe", LinkFlags: "-s -w -H=windowsgui"}
	want := []string{"build", "-ldflags", "-s -w -H=windowsgui", "-o", "dist/app.exe", "."}
	if got := inv.Args(); !slices.Equal(got, want) {
		t.Fatalf("Args = %q, want %q", got, want)
	}

	inv = Invocation{Output: "out", Package: "./cmd/app"}
	want = []string{"build", "-o", "out", "./cmd/app"}
	if got := inv.Args(); !slices.Equal(got, want) {
		t.Fatalf("Args = %q, want %q", got, want)
	}
}

func TestResultClean(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		clean  bool
	}{
		{name: "success", result: Result{}, clean: true},
		{name: "final newline only", result: Result{Stderr: "\n"}, clean: true},
		{name: "final crlf only", result: Result{Stderr: "\r\n"}, clean: true},
		{name: "whitespace only", result: Result{Stderr: " \n"}, clean: false},
		{name: "blank lines", result: Result{Stderr: "\n\n"}, clean: false},
		{name: "warning", result: Result{Stderr: "cgo: warning"}, clean: false},
		{name: "exit code", result: Result{ExitCode: 2}, clean: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Clean(); got != tt.clean {
				t.Fatalf("Clean = %v, want %v", got, tt.clean)
			}
		})
	}
}

// Writes a shell script standing in for the go executable.
func fakeGo(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "go")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGoBuildPassesArgsAndEnv(t *testing.T) {
	dir := t.TempDir()
	gc := NewGo(fakeGo(t, `echo "$@"; echo "$GOOS/$GOARCH $EXTRA"`), "EXTRA=yes")

	result, err := gc.Build(context.Background(), Invocation{
		Dir:       dir,
		Output:    "bin",
		LinkFlags: "-s -w",
		Env:       []string{"GOOS=darwin", "GOARCH=arm64"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Clean() {
		t.Fatalf("result not clean: %+v", result)
	}
	lines := strings.Split(strings.TrimSpace(result.Stdout), "\n")
	if len(lines) != 2 {
		t.Fatalf("stdout = %q", result.Stdout)
	}
	if lines[0] != "build -ldflags -s -w -o bin ." {
		t.Errorf("args = %q", lines[0])
	}
	if lines[1] != "darwin/arm64 yes" {
		t.Errorf("env = %q", lines[1])
	}
}

func TestGoBuildReportsFailure(t *testing.T) {
	gc := NewGo(fakeGo(t, "echo 'undefined: foo' >&2\nexit 1\n"))

	result, err := gc.Build(context.Background(), Invocation{Dir: t.TempDir(), Output: "bin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", result.ExitCode)
	}
	if result.Diagnostic() != "undefined: foo" {
		t.Errorf("Diagnostic = %q", result.Diagnostic())
	}
}

func TestGoBuildMissingExecutable(t *testing.T) {
	gc := NewGo(filepath.Join(t.TempDir(), "no-such-go"))
	_, err := gc.Build(context.Background(), Invocation{Output: "bin"})
	if !errors.Is(err, ErrToolchain) {
		t.Fatalf("err = %v, want ErrToolchain", err)
	}
}

func TestGoBuildCancelled(t *testing.T) {
	gc := NewGo(fakeGo(t, "sleep 5\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gc.Build(ctx, Invocation{Dir: t.TempDir(), Output: "bin"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestResultDiagnostic(t *testing.T) {
	tests := []struct {
		stderr string
		want   string
	}{
		{stderr: "", want: ""},
		{stderr: "undefined: foo\n", want: "undefined: foo"},
		{stderr: "a\nb\r\n", want: "a\nb"},
		{stderr: "  warning  \n", want: "  warning  "},
		{stderr: "\n\n", want: "\n"},
	}
	for _, tt := range tests {
		r := &Result{Stderr: tt.stderr}
		if got := r.Diagnostic(); got != tt.want {
			t.Errorf("Diagnostic(%q) = %q, want %q", tt.stderr, got, tt.want)
		}
	}
}
