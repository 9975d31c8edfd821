package deps

import "errors"

var (
	ErrInstallFailed = errors.New("dependency installation failed")
)
