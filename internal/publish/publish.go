package publish

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/cruxpack/internal/paths"
	"github.com/cruciblehq/cruxpack/internal/platform"
	"github.com/cruciblehq/cruxpack/internal/shell"
	"github.com/opencontainers/go-digest"
)

// Controls a build-and-archive run.
type Options struct {
	Command        string // Build command for every platform except Windows.
	WindowsCommand string // Build command for Windows.
	Product        string // Product name, the first component of the archive name.
	Dist           string // Directory the build command produces. Defaults to [paths.Dist].
	Staging        string // Scratch directory, must not exist. Defaults to [paths.Staging].
	Publish        string // Directory the archive is written to. Defaults to [paths.Publish].
	Bundle         string // Top-level directory inside the archive. Defaults to [paths.Bundle].
}

// Returned after a successful run.
type Result struct {
	Archive string        // Path to the written archive.
	Digest  digest.Digest // Digest of the archive contents.
	Size    int64         // Archive size in bytes.
	Files   int           // Regular files stored in the archive.
}

// Returns the archive file name for product on host.
func ArchiveName(product string, host platform.Host) string {
	return fmt.Sprintf("%s-%s-%s.zip", product, host.Arch, host.Label())
}

// Runs the build for host and archives its output.
//
// The build command is selected by platform and run through runner. A
// non-zero exit returns [ErrCommandFailed]; a zero exit without the output
// directory returns [ErrOutputMissing]. Neither touches the staging or
// publish directories. The publish directory must already exist.
func Pack(ctx context.Context, host platform.Host, runner shell.Runner, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	command := opts.command(host)

	slog.Info("running build", "platform", host.Label(), "arch", host.Arch, "command", command)

	res, err := runner.Run(ctx, command)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}

	if !res.Success() || !isDir(opts.Dist) {
		return nil, buildError(res, opts.Dist)
	}

	archive := filepath.Join(opts.Publish, ArchiveName(opts.Product, host))
	files, err := stageAndArchive(opts, archive)
	if err != nil {
		return nil, err
	}

	result, err := inspect(archive)
	if err != nil {
		return nil, err
	}
	result.Files = files

	slog.Info("archive written",
		"archive", result.Archive,
		"files", result.Files,
		"size", result.Size,
		"digest", result.Digest.String(),
	)

	return result, nil
}

// Distinguishes the two ways a build can fail.
func buildError(res *shell.Result, dist string) error {
	if !res.Success() {
		return fmt.Errorf("%w: exit code %d", ErrCommandFailed, res.ExitCode)
	}
	return fmt.Errorf("%w: %s", ErrOutputMissing, dist)
}

// Copies the build output into a fresh staging directory and compresses it to
// archive. Returns the number of regular files archived.
//
// Staging is removed before returning. A staging directory that already
// existed is left alone and reported as an error.
func stageAndArchive(opts Options, archive string) (files int, err error) {
	if err := os.Mkdir(opts.Staging, paths.DefaultDirMode); err != nil {
		return 0, fmt.Errorf("%w: create staging: %w", ErrFileSystemOperation, err)
	}

	defer func() {
		if rmErr := os.RemoveAll(opts.Staging); rmErr != nil && err == nil {
			err = fmt.Errorf("%w: remove staging: %w", ErrFileSystemOperation, rmErr)
		}
	}()

	slog.Debug("staging build output", "src", opts.Dist, "dest", filepath.Join(opts.Staging, opts.Bundle))

	if _, err := CopyTree(opts.Dist, filepath.Join(opts.Staging, opts.Bundle)); err != nil {
		return 0, err
	}

	f, err := os.OpenFile(archive, os.O_CREATE|os.O_EXCL|os.O_WRONLY, paths.DefaultFileMode)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	files, err = WriteZip(f, opts.Staging)
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("%w: %w", ErrArchive, closeErr)
	}
	if err != nil {
		os.Remove(archive)
		return 0, err
	}

	return files, nil
}

// Reads back the archive's size and digest.
func inspect(archive string) (*Result, error) {
	f, err := os.Open(archive)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}
	defer f.Close()

	dgst, err := digest.FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	return &Result{Archive: archive, Digest: dgst, Size: info.Size()}, nil
}

// Returns the build command for host.
func (o Options) command(host platform.Host) string {
	switch host.Platform {
	case platform.Windows:
		return o.WindowsCommand
	case platform.Linux, platform.MacOS, platform.Other:
		return o.Command
	}
	return o.Command
}

func (o Options) withDefaults() Options {
	if o.Dist == "" {
		o.Dist = paths.Dist
	}
	if o.Staging == "" {
		o.Staging = paths.Staging
	}
	if o.Publish == "" {
		o.Publish = paths.Publish
	}
	if o.Bundle == "" {
		o.Bundle = paths.Bundle
	}
	return o
}
