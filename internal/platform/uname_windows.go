//go:build windows

package platform

import "os"

// Windows has no uname. The OS name is fixed and the architecture comes from
// the environment the process was started with.
func uname() (string, string) {
	arch := os.Getenv("PROCESSOR_ARCHITEW6432")
	if arch == "" {
		arch = os.Getenv("PROCESSOR_ARCHITECTURE")
	}
	return windowsName, arch
}
