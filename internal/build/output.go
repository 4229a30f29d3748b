package build

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cruciblehq/xpack/internal/paths"
)

// Replaces the output root with an empty directory.
//
// Everything previously under path is deleted without confirmation.
func prepareOutputRoot(path string) error {
	if err := Clean(path); err != nil {
		return err
	}

	if err := os.MkdirAll(path, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	return nil
}

// Removes the output root and everything under it.
//
// A missing output root is not an error.
func Clean(path string) error {
	if _, err := os.Lstat(path); os.IsNotExist(err) {
		return nil
	}

	slog.Debug("removing output root", "path", path)

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	return nil
}
