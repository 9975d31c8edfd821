//go:build !windows

package shell

import "os/exec"

func interpreter() (string, string) {
	return "/bin/sh", "-c"
}

func configure(*exec.Cmd, string, string, string) {}
