package bundle

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/xpack/internal/paths"
)

// Controls bundle assembly.
type Options struct {
	App       string // Application name; the bundle is "<App>.app".
	Binary    string // File name of the compiled binary inside dir.
	InfoPlist string // Source of Contents/Info.plist.
	Icon      string // Source of Contents/Resources/icon.icns.
}

// Reshapes a target directory into an application bundle.
//
// dir must already contain the compiled binary named opts.Binary. The bundle
// tree is created inside dir, the metadata and icon are copied into it, and
// the binary is moved into Contents/MacOS. There is no rollback: a failure
// leaves whatever was created so far in place.
func Assemble(dir string, opts Options) (*Layout, error) {
	binary := filepath.Join(dir, opts.Binary)
	if info, err := os.Stat(binary); err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %w: %s", ErrBundle, ErrMissingBinary, binary)
	}

	layout := NewLayout(dir, opts.App, opts.Binary)

	for _, d := range []string{layout.Contents, layout.Resources, layout.MacOS} {
		if err := os.MkdirAll(d, paths.DefaultDirMode); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBundle, err)
		}
	}

	if err := copyFile(opts.InfoPlist, layout.InfoPlist); err != nil {
		return nil, fmt.Errorf("%w: metadata: %w", ErrBundle, err)
	}

	if err := copyFile(opts.Icon, layout.Icon); err != nil {
		return nil, fmt.Errorf("%w: icon: %w", ErrBundle, err)
	}

	if err := moveFile(binary, layout.Executable); err != nil {
		return nil, fmt.Errorf("%w: executable: %w", ErrBundle, err)
	}

	slog.Debug("bundle assembled", "bundle", layout.Root, "executable", layout.Executable)

	return &layout, nil
}
