package publish

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/cruxpack/internal/paths"
)

// Recursively copies the directory src to dst, which must not exist.
//
// Regular files keep their permission bits and modification times. Symbolic
// links are followed: a link to a file is copied as a file, a link to a
// directory is copied as a directory. Returns the number of regular files
// copied.
func CopyTree(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCopy, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: %s is not a directory", ErrCopy, src)
	}

	if _, err := os.Lstat(dst); err == nil {
		return 0, fmt.Errorf("%w: %s already exists", ErrCopy, dst)
	}

	if err := os.MkdirAll(filepath.Dir(dst), paths.DefaultDirMode); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCopy, err)
	}

	n, err := copyDir(src, dst, info)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrCopy, err)
	}
	return n, nil
}

// Copies one directory level, recursing into subdirectories.
func copyDir(src, dst string, info fs.FileInfo) (int, error) {
	if err := os.Mkdir(dst, info.Mode().Perm()|0o700); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		n, err := copyEntry(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()))
		count += n
		if err != nil {
			return count, err
		}
	}

	return count, os.Chmod(dst, info.Mode().Perm())
}

// Copies a single entry, resolving symbolic links first.
func copyEntry(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}

	switch {
	case info.IsDir():
		return copyDir(src, dst, info)
	case info.Mode().IsRegular():
		return 1, copyFile(src, dst, info)
	default:
		slog.Debug("skipping irregular file", "path", src, "mode", info.Mode().String())
		return 0, nil
	}
}

// Copies file contents, permission bits, and modification time.
func copyFile(src, dst string, info fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
