//go:build windows

package shell

import (
	"os"
	"os/exec"
	"syscall"
)

func interpreter() (string, string) {
	if comspec := os.Getenv("ComSpec"); comspec != "" {
		return comspec, "/C"
	}
	return "cmd.exe", "/C"
}

// Passes the command line through verbatim. The default argument quoting
// escapes the quotes cmd.exe relies on to find the command boundary.
func configure(cmd *exec.Cmd, path, flag, command string) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: `"` + path + `" ` + flag + " " + command,
	}
}
