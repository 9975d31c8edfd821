// Package platform identifies the host a release is packaged on.
//
// A [Host] is detected once at start-up and passed explicitly to the rest of
// the program. It carries the raw operating system name, the raw machine
// architecture reported by the kernel (e.g. "x86_64", "arm64", "AMD64"), and
// the [Platform] the OS name maps to. Architecture strings are never
// normalized; Apple's kernel name "Darwin" is the only OS name that is
// relabelled, to "macOS".
//
// Example usage:
//
//	host := platform.Detect()
//	switch host.Platform {
//	case platform.Windows:
//	    // ...
//	}
//	name := fmt.Sprintf("%s-%s-%s.zip", product, host.Arch, host.Label())
package platform
