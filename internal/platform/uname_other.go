//go:build !unix && !windows

package platform

func uname() (string, string) {
	return "", ""
}
