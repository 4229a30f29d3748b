package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cruciblehq/xpack/internal/build"
	"github.com/cruciblehq/xpack/internal/project"
)

// Represents the 'xpack clean' command.
type CleanCmd struct {
	ProjectFlags
}

// Removes the output directory.
func (c *CleanCmd) Run(ctx context.Context) error {
	root, cfg, err := c.load()
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return fmt.Errorf("%w: output is required", project.ErrConfig)
	}
	if err := project.CheckOutput(root, cfg.Output); err != nil {
		return err
	}
	output := project.Resolve(root, cfg.Output)

	if err := build.Clean(output); err != nil {
		return err
	}

	slog.Info("output removed", "path", output)
	return nil
}
