package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"
)

// Name of the Go toolchain executable looked up on PATH.
const defaultGo = "go"

// Builds a Go package into a binary.
type Compiler interface {
	Build(ctx context.Context, inv Invocation) (*Result, error)
}

// Describes a single compiler run.
type Invocation struct {
	Dir       string   // Working directory (the project root).
	Package   string   // Package to build, relative to Dir (e.g., ".").
	Output    string   // Path of the binary to write.
	LinkFlags string   // Value passed to -ldflags. Omitted when empty.
	Env       []string // "KEY=value" entries overlaid on the process environment.
}

// Returns the arguments passed to the toolchain for this invocation.
//
// The layout is "build [-ldflags <flags>] -o <output> <package>".
func (inv Invocation) Args() []string {
	args := []string{"build"}
	if inv.LinkFlags != "" {
		args = append(args, "-ldflags", inv.LinkFlags)
	}

	pkg := inv.Package
	if pkg == "" {
		pkg = "."
	}

	return append(args, "-o", inv.Output, pkg)
}

// Output of a compiler run.
type Result struct {
	ExitCode int           // Exit code of the process.
	Stdout   string        // Captured standard output.
	Stderr   string        // Captured standard error.
	Duration time.Duration // Wall-clock time spent in the process.
}

// Returns the diagnostic output of the run without its final newline.
//
// The Go toolchain reports both errors and warnings (for example from cgo)
// on standard error. Any other output, whitespace included, is kept and
// counts as a diagnostic.
func (r *Result) Diagnostic() string {
	s := strings.TrimSuffix(r.Stderr, "\n")
	return strings.TrimSuffix(s, "\r")
}

// Reports whether the run exited cleanly without writing diagnostics.
func (r *Result) Clean() bool {
	return r.ExitCode == 0 && r.Diagnostic() == ""
}

// Runs the Go toolchain installed on the host.
type Go struct {
	path string   // Executable to run.
	base []string // Environment the invocation's entries are overlaid on.
}

// Creates a [Go] compiler.
//
// path is the toolchain executable; an empty string uses "go" from PATH.
// The current process environment is used as the base environment.
func NewGo(path string, extraEnv ...string) *Go {
	if path == "" {
		path = defaultGo
	}
	return &Go{
		path: path,
		base: mergeEnv(os.Environ(), extraEnv),
	}
}

// Runs "go build" for the invocation and waits for it to exit.
//
// Cancelling ctx kills the process. Failing to start the process, or being
// killed by cancellation, is returned as an error; a compiler that ran and
// failed is reported through [Result.ExitCode] and [Result.Stderr].
func (g *Go) Build(ctx context.Context, inv Invocation) (*Result, error) {
	args := inv.Args()

	cmd := exec.CommandContext(ctx, g.path, args...)
	cmd.Dir = inv.Dir
	cmd.Env = mergeEnv(g.base, inv.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("exec", "cmd", g.path, "args", args, "dir", inv.Dir, "env", inv.Env)

	start := time.Now()
	err := cmd.Run()
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrToolchain, ctxErr)
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return nil, fmt.Errorf("%w: %w", ErrToolchain, err)
	}

	return result, nil
}

// Merges override env vars on top of a base env slice.
//
// Later entries win. Malformed entries without "=" are dropped. The result
// is sorted so that the environment passed to the process is deterministic.
func mergeEnv(base, overrides []string) []string {
	merged := make(map[string]string, len(base)+len(overrides))
	for _, entries := range [][]string{base, overrides} {
		for _, entry := range entries {
			if k, v, ok := strings.Cut(entry, "="); ok {
				merged[k] = v
			}
		}
	}

	result := make([]string, 0, len(merged))
	for k, v := range merged {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
