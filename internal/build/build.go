package build

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/cruciblehq/xpack/internal/project"
	"github.com/cruciblehq/xpack/internal/toolchain"
)

// Controls a build.
type Options struct {
	Root       string              // Project root; the compiler runs here.
	Config     *project.Config     // Packaging configuration.
	LinkFlags  []string            // Extra link flags for every target (e.g., version stamps).
	OnComplete func(*TargetResult) // Called once per target as it finishes. Calls are serialized.
	Now        func() time.Time    // Clock for the manifest. Defaults to time.Now.
}

// Outcome of a build.
type Result struct {
	RunID    string          // Unique identifier of this build.
	Output   string          // Absolute path of the output root.
	Manifest string          // Path of the written manifest.
	Targets  []*TargetResult // Per-target outcomes, in configuration order.
	Duration time.Duration   // Wall-clock time of the whole build.
}

// Returns the targets that did not succeed.
func (r *Result) Failed() []*TargetResult {
	var failed []*TargetResult
	for _, t := range r.Targets {
		if t.Status != StatusSucceeded {
			failed = append(failed, t)
		}
	}
	return failed
}

// Whether every target succeeded.
func (r *Result) OK() bool {
	return len(r.Failed()) == 0
}

// Builds and packages the application for every configured target.
//
// The configuration is validated before the output root is touched. A
// configuration or output root error is returned with a nil result. Once
// targets have been dispatched the result is always returned; if any target
// did not succeed the error wraps [ErrBuild] and names the failed targets.
func Run(ctx context.Context, gc toolchain.Compiler, opts Options) (*Result, error) {
	cfg := opts.Config

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	if err := cfg.Validate(root); err != nil {
		return nil, err
	}

	targets, err := cfg.ParseTargets()
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:  uuid.NewString(),
		Output: project.Resolve(root, cfg.Output),
	}

	slog.Info("building",
		"app", cfg.Name,
		"output", result.Output,
		"targets", len(targets),
		"run", result.RunID,
	)

	if err := prepareOutputRoot(result.Output); err != nil {
		return nil, err
	}

	start := time.Now()

	p := newPipeline(gc, root, result.Output, cfg, opts.LinkFlags)
	result.Targets = dispatch(ctx, targets, dispatchOptions{
		jobs:       cfg.Jobs,
		failFast:   cfg.FailFast,
		onComplete: opts.OnComplete,
	}, p.run)

	result.Duration = time.Since(start)

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	manifest, err := writeManifest(result, cfg, now())
	if err != nil {
		return result, err
	}
	result.Manifest = manifest

	if !result.OK() {
		failed := result.Failed()
		names := make([]string, len(failed))
		for i, t := range failed {
			names[i] = t.Target.String()
		}
		return result, fmt.Errorf("%w: %d of %d targets did not succeed: %v", ErrBuild, len(failed), len(result.Targets), names)
	}

	slog.Info("build complete", "targets", len(result.Targets), "duration", result.Duration.Round(time.Millisecond))

	return result, nil
}
