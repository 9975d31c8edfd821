package publish

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cruciblehq/cruxpack/internal/paths"
)

// Removes dir and everything under it, then recreates it empty.
func ResetDir(dir string) error {
	if _, err := os.Lstat(dir); err == nil {
		slog.Debug("removing existing directory", "dir", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
	}

	if err := os.Mkdir(dir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	return nil
}

// Returns true if path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
