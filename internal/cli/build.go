package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/cruciblehq/xpack/internal"
	"github.com/cruciblehq/xpack/internal/build"
	"github.com/cruciblehq/xpack/internal/project"
	"github.com/cruciblehq/xpack/internal/toolchain"
	"github.com/cruciblehq/xpack/internal/vcs"
)

// Represents the 'xpack build' command.
type BuildCmd struct {
	ProjectFlags

	Target        []string `short:"t" help:"Build only these targets instead of the configured ones. Repeatable." placeholder:"OS/ARCH"`
	Jobs          int      `short:"j" default:"-1" help:"Maximum concurrent compiler runs; 0 is unlimited, -1 keeps the configured value."`
	FailFast      bool     `help:"Cancel the remaining targets after the first failure."`
	AllowWarnings bool     `help:"Do not fail targets whose compiler succeeded but printed diagnostics."`
	Go            string   `default:"go" help:"Go toolchain executable." placeholder:"PATH"`
}

// Executes the build command.
//
// Every target is built and reported before the command returns. The
// returned error is non-nil if the configuration is invalid or any target
// did not succeed.
func (c *BuildCmd) Run(ctx context.Context) error {
	root, cfg, err := c.load()
	if err != nil {
		return err
	}
	c.apply(cfg)

	env, err := toolchain.ReadEnvFile(project.Resolve(root, cfg.EnvFile))
	if err != nil {
		return err
	}

	flags, err := stampFlags(root, cfg)
	if err != nil {
		return err
	}

	rep := newReporter(os.Stdout, os.Stderr, len(cfg.Targets), isatty(os.Stderr) && !internal.IsQuiet())

	result, err := build.Run(ctx, toolchain.NewGo(c.Go, env...), build.Options{
		Root:       root,
		Config:     cfg,
		LinkFlags:  flags,
		OnComplete: rep.complete,
	})
	if result != nil {
		rep.summary(result)
	}

	return err
}

// Applies flag overrides to the configuration.
func (c *BuildCmd) apply(cfg *project.Config) {
	if len(c.Target) > 0 {
		cfg.Targets = c.Target
	}
	if c.Jobs >= 0 {
		cfg.Jobs = c.Jobs
	}
	if c.FailFast {
		cfg.FailFast = true
	}
	if c.AllowWarnings {
		cfg.AllowWarnings = true
	}
}

// Returns the version stamping link flags for the project.
//
// A project outside a git repository is stamped with the configured
// version only.
func stampFlags(root string, cfg *project.Config) ([]string, error) {
	if cfg.Stamp.Package == "" {
		return nil, nil
	}

	rev, err := vcs.Head(root)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		slog.Warn("not a git repository, commit will not be stamped", "root", root)
	}

	return vcs.StampFlags(cfg.Stamp.Package, cfg.Stamp.Version, rev), nil
}
