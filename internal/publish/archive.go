package publish

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// Writes the contents of root to w as a deflated zip archive.
//
// Entry names are slash-separated paths relative to root; root itself is not
// an entry. Directories are stored as "name/" entries so empty directories
// survive a round trip. Returns the number of regular files written.
func WriteZip(w io.Writer, root string) (int, error) {
	zw := zip.NewWriter(w)
	count := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		written, err := writeZipEntry(zw, path, filepath.ToSlash(relPath), d)
		if written {
			count++
		}
		return err
	})
	if err != nil {
		zw.Close()
		return count, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	if err := zw.Close(); err != nil {
		return count, fmt.Errorf("%w: %w", ErrArchive, err)
	}
	return count, nil
}

// Writes a single file or directory entry. Reports whether a regular file was
// written.
func writeZipEntry(zw *zip.Writer, hostPath, archivePath string, d fs.DirEntry) (bool, error) {
	info, err := d.Info()
	if err != nil {
		return false, err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return false, err
	}
	header.Name = archivePath

	switch {
	case info.IsDir():
		header.Name += "/"
		header.Method = zip.Store
		_, err := zw.CreateHeader(header)
		return false, err
	case info.Mode().IsRegular():
		header.Method = zip.Deflate
	default:
		return false, nil
	}

	dst, err := zw.CreateHeader(header)
	if err != nil {
		return false, err
	}

	f, err := os.Open(hostPath)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = io.Copy(dst, f)
	return err == nil, err
}
