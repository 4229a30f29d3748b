package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/containerd/errdefs"
)

// Checks the configuration against the project root.
//
// All problems are reported together. Each one wraps [ErrConfig] and either
// [errdefs.ErrInvalidArgument] (bad values) or [errdefs.ErrNotFound] (missing
// input files). Bundle resources are only required when a darwin target is
// configured.
func (c *Config) Validate(root string) error {
	var errs []error

	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %w: "+format, append([]any{ErrConfig, errdefs.ErrInvalidArgument}, args...)...))
	}

	if strings.TrimSpace(c.Name) == "" {
		invalid("name is required")
	} else if strings.ContainsAny(c.Name, `/\`) {
		invalid("name %q must not contain path separators", c.Name)
	}

	if strings.TrimSpace(c.Binary) == "" {
		invalid("binary is required")
	} else if strings.ContainsAny(c.Binary, `/\`) {
		invalid("binary %q must not contain path separators", c.Binary)
	}

	if strings.TrimSpace(c.Output) == "" {
		invalid("output is required")
	} else if err := CheckOutput(root, c.Output); err != nil {
		errs = append(errs, err)
	}

	if c.Jobs < 0 {
		invalid("jobs must not be negative, got %d", c.Jobs)
	}

	if len(c.Targets) == 0 {
		invalid("at least one target is required")
	} else if _, err := c.ParseTargets(); err != nil {
		invalid("%w", err)
	}

	if c.HasDarwin() {
		errs = append(errs,
			requireFile(root, "bundle.info_plist", c.Bundle.InfoPlist),
			requireFile(root, "bundle.icon", c.Bundle.Icon),
		)
	}

	if c.EnvFile != "" {
		errs = append(errs, requireFile(root, "env_file", c.EnvFile))
	}

	return errors.Join(errs...)
}

// Checks that removing the output root cannot remove the project.
//
// The output, resolved against root, must not be the project root or any of
// its ancestors.
func CheckOutput(root, output string) error {
	if containsRoot(root, Resolve(root, output)) {
		return fmt.Errorf("%w: %w: output %q must not be the project root or contain it", ErrConfig, errdefs.ErrInvalidArgument, output)
	}
	return nil
}

// Reports whether dir is root or one of its ancestors.
//
// Paths on different volumes never contain each other.
func containsRoot(root, dir string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return true
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return true
	}

	rel, err := filepath.Rel(absDir, absRoot)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Returns an error unless p names a regular file.
func requireFile(root, key, p string) error {
	if p == "" {
		return fmt.Errorf("%w: %w: %s is required", ErrConfig, errdefs.ErrInvalidArgument, key)
	}

	info, err := os.Stat(Resolve(root, p))
	if err != nil {
		return fmt.Errorf("%w: %w: %s: %w", ErrConfig, errdefs.ErrNotFound, key, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %w: %s: %q is not a regular file", ErrConfig, errdefs.ErrInvalidArgument, key, p)
	}
	return nil
}
