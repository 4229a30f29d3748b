package cli

import (
	"log/slog"
	"path/filepath"

	"github.com/cruciblehq/xpack/internal/project"
)

// Flags shared by commands that operate on a project.
type ProjectFlags struct {
	Root   string `short:"C" default:"." help:"Project root containing the main package." placeholder:"DIR"`
	Config string `short:"c" help:"Configuration file, relative to the working directory. Searched for in the project root and user config directory when unset." placeholder:"PATH"`
	Output string `short:"o" help:"Override the output directory." placeholder:"DIR"`
}

// Loads the project configuration and applies the flag overrides.
func (f *ProjectFlags) load() (string, *project.Config, error) {
	root, err := filepath.Abs(f.Root)
	if err != nil {
		return "", nil, err
	}

	cfg, path, err := project.Load(root, f.Config)
	if err != nil {
		return "", nil, err
	}

	if path == "" {
		slog.Debug("no configuration file, using defaults", "root", root)
	} else {
		slog.Debug("configuration loaded", "path", path)
	}

	if f.Output != "" {
		cfg.Output = f.Output
	}

	return root, cfg, nil
}
