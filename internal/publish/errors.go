package publish

import (
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
)

var (
	ErrCommandFailed       = errors.New("build command failed")
	ErrOutputMissing       = fmt.Errorf("build output missing: %w", errdefs.ErrNotFound)
	ErrFileSystemOperation = errors.New("file system operation failed")
	ErrCopy                = errors.New("copy failed")
	ErrArchive             = errors.New("archive failed")
)
