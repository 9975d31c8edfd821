//go:build unix

package platform

import "golang.org/x/sys/unix"

// Returns the kernel sysname and machine fields, or empty strings if the
// uname call fails.
func uname() (string, string) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", ""
	}
	return unix.ByteSliceToString(u.Sysname[:]), unix.ByteSliceToString(u.Machine[:])
}
