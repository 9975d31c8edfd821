package platform

import (
	"fmt"
	"runtime"
)

// Operating system family of a host.
type Platform int

const (
	Other Platform = iota
	Linux
	MacOS
	Windows
)

// OS names as reported by the host kernel.
const (
	linuxName   = "Linux"
	darwinName  = "Darwin"
	windowsName = "Windows"

	// Label used for Darwin hosts.
	macOSLabel = "macOS"
)

// Maps a raw OS name to its [Platform].
func Parse(osName string) Platform {
	switch osName {
	case linuxName:
		return Linux
	case darwinName:
		return MacOS
	case windowsName:
		return Windows
	default:
		return Other
	}
}

func (p Platform) String() string {
	switch p {
	case Linux:
		return linuxName
	case MacOS:
		return macOSLabel
	case Windows:
		return windowsName
	case Other:
		return "other"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// Host operating system and architecture.
type Host struct {
	Platform Platform // Family derived from OS.
	OS       string   // Raw OS name (e.g. "Linux", "Darwin", "FreeBSD").
	Arch     string   // Raw machine architecture (e.g. "x86_64", "arm64").
}

// Builds a [Host] from a raw OS name and architecture.
func NewHost(osName, arch string) Host {
	return Host{Platform: Parse(osName), OS: osName, Arch: arch}
}

// Returns the platform label used in archive names.
//
// Known platforms use their canonical label. Unknown hosts pass the raw OS
// name through unchanged.
func (h Host) Label() string {
	switch h.Platform {
	case Linux, MacOS, Windows:
		return h.Platform.String()
	}
	return h.OS
}

func (h Host) String() string {
	return h.Label() + "/" + h.Arch
}

// Detects the current host.
//
// Detection never fails. If the kernel cannot be queried, the Go runtime's
// GOOS and GOARCH are used instead.
func Detect() Host {
	osName, arch := uname()
	if osName == "" {
		osName = runtime.GOOS
	}
	if arch == "" {
		arch = runtime.GOARCH
	}
	return NewHost(osName, arch)
}
