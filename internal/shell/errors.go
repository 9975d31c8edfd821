package shell

import "errors"

var (
	ErrStart = errors.New("command could not be started")
)
