package build

import (
	"context"
	_ "crypto/sha256" // Registers the hash used by go-digest.
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/cruciblehq/xpack/internal/bundle"
	"github.com/cruciblehq/xpack/internal/paths"
	"github.com/cruciblehq/xpack/internal/project"
	"github.com/cruciblehq/xpack/internal/target"
	"github.com/cruciblehq/xpack/internal/toolchain"
)

// Outcome of a single target.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled" // Stopped or never started because the build was cancelled.
)

// Outcome of building and packaging one target.
type TargetResult struct {
	Target     target.Target
	Status     Status
	Dir        string        // Target directory under the output root.
	Artifact   string        // Final path of the executable.
	Bundle     string        // Application bundle root, darwin only.
	Size       int64         // Size of the executable in bytes.
	Digest     digest.Digest // sha256 digest of the executable.
	Diagnostic string        // Compiler diagnostic output, if any.
	Duration   time.Duration // Wall-clock time spent on the target.
	Err        error         // Cause of failure or cancellation.
}

// Holds shared state for building every target of a run.
type pipeline struct {
	gc        toolchain.Compiler // Compiler used for every target.
	root      string             // Project root, working directory of the compiler.
	output    string             // Output root.
	cfg       *project.Config    // Packaging configuration.
	linkFlags []string           // Extra link flags appended for every target.
}

// Creates a new [pipeline].
func newPipeline(gc toolchain.Compiler, root, output string, cfg *project.Config, linkFlags []string) *pipeline {
	return &pipeline{
		gc:        gc,
		root:      root,
		output:    output,
		cfg:       cfg,
		linkFlags: linkFlags,
	}
}

// Compiles, places, and (for darwin) bundles a single target.
//
// The returned result is never nil. Its Err wraps [ErrCompile],
// [ErrDiagnostic], [ErrFileSystemOperation], or [bundle.ErrBundle] on
// failure, or the context error when the build was cancelled.
func (p *pipeline) run(ctx context.Context, t target.Target) *TargetResult {
	start := time.Now()
	res := &TargetResult{
		Target: t,
		Dir:    p.targetDir(t),
	}

	err := p.build(ctx, t, res)
	res.Duration = time.Since(start)

	switch {
	case err == nil:
		res.Status = StatusSucceeded
		slog.Info("target built", "target", t.String(), "artifact", res.Artifact, "duration", res.Duration.Round(time.Millisecond))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		res.Status = StatusCancelled
		res.Err = err
		slog.Warn("target cancelled", "target", t.String())
	default:
		res.Status = StatusFailed
		res.Err = err
		slog.Error("target failed", "target", t.String(), "error", err, "diagnostic", res.Diagnostic)
	}

	return res
}

// Runs the steps of a target, filling in res as they complete.
func (p *pipeline) build(ctx context.Context, t target.Target, res *TargetResult) error {
	if err := os.MkdirAll(res.Dir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	binary, err := p.compile(ctx, t, res)
	if err != nil {
		return err
	}
	res.Artifact = binary

	if t.IsDarwin() {
		layout, err := bundle.Assemble(res.Dir, bundle.Options{
			App:       p.cfg.Name,
			Binary:    t.Executable(p.cfg.Binary),
			InfoPlist: project.Resolve(p.root, p.cfg.Bundle.InfoPlist),
			Icon:      project.Resolve(p.root, p.cfg.Bundle.Icon),
		})
		if err != nil {
			return err
		}
		res.Bundle = layout.Root
		res.Artifact = layout.Executable
	}

	size, dgst, err := fingerprint(res.Artifact)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	res.Size = size
	res.Digest = dgst

	return nil
}

// Runs the compiler for a target and returns the path of the binary.
//
// Any diagnostic output fails the target, even when the compiler exits
// cleanly, unless warnings are allowed by the configuration. The binary
// must exist and be non-empty afterwards.
func (p *pipeline) compile(ctx context.Context, t target.Target, res *TargetResult) (string, error) {
	out := filepath.Join(res.Dir, t.Executable(p.cfg.Binary))

	inv := toolchain.Invocation{
		Dir:       p.root,
		Package:   p.cfg.Package,
		Output:    out,
		LinkFlags: t.LinkFlags(p.cfg.LDFlags, p.linkFlags...),
		Env:       t.Environ(p.cfg.CGOEnabled()),
	}

	slog.Debug("compiling", "target", t.String(), "output", out, "ldflags", inv.LinkFlags)

	result, err := p.gc.Build(ctx, inv)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompile, err)
	}
	res.Diagnostic = result.Diagnostic()

	switch {
	case result.ExitCode != 0:
		return "", fmt.Errorf("%w: exit code %d", ErrCompile, result.ExitCode)
	case result.Clean():
	case p.cfg.AllowWarnings:
		slog.Warn("compiler diagnostics", "target", t.String(), "diagnostic", res.Diagnostic)
	default:
		return "", ErrDiagnostic
	}

	info, err := os.Stat(out)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompile, err)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrCompile, out)
	}

	return out, nil
}

// Returns the directory for a target, "<output>/<App>-<os>-<arch>".
func (p *pipeline) targetDir(t target.Target) string {
	dir, _ := ArtifactPath(p.output, p.cfg, t)
	return dir
}

// Returns the target directory and the final executable path of a target.
//
// For darwin the executable lives inside the application bundle.
func ArtifactPath(output string, cfg *project.Config, t target.Target) (dir, executable string) {
	dir = filepath.Join(output, cfg.Name+"-"+t.Slug())
	name := t.Executable(cfg.Binary)

	if t.IsDarwin() {
		return dir, bundle.NewLayout(dir, cfg.Name, name).Executable
	}
	return dir, filepath.Join(dir, name)
}

// Returns the size and sha256 digest of a file.
func fingerprint(path string) (int64, digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, "", err
	}

	dgst, err := digest.SHA256.FromReader(f)
	if err != nil {
		return 0, "", err
	}

	return info.Size(), dgst, nil
}
