package internal

import (
	"fmt"
	"runtime"
	"strings"
)

const (

	// Program name used for logging groups, config paths, and usage output.
	Name = "cruxpack"

	// String to indicate an undefined variable
	defaultUndefined = "(undefined)"

	// String to indicate a local (non-pipeline) build
	defaultLocalBuild = "(local)"

	// Main branch name used in version strings
	mainBranch = "main"
)

// Set via -ldflags "-X github.com/cruciblehq/cruxpack/internal.<name>=<value>".
var (
	version   = ""
	stage     = ""
	gitCommit = ""

	rawQuiet   = "false"
	rawDebug   = "false"
	rawVerbose = "false"
)

// Returns the version without any "v" prefix, or "(undefined)".
func Version() string {
	v := strings.ToLower(strings.TrimSpace(version))
	if v == "" {
		return defaultUndefined
	}
	return strings.TrimPrefix(v, "v")
}

// Returns the lowercased git branch the binary was built from, or
// "(undefined)".
func Stage() string {
	return orUndefined(strings.ToLower(strings.TrimSpace(stage)))
}

// Returns the git commit hash, or "(undefined)".
func GitCommit() string {
	return orUndefined(strings.TrimSpace(gitCommit))
}

// Returns the Go platform the binary was compiled for (e.g. "linux/amd64").
//
// This is the compile target, not the host reported by the platform package.
func BuildTarget() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// Returns true if any of version, commit, or stage was left unset.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" ||
		strings.TrimSpace(gitCommit) == "" ||
		strings.TrimSpace(stage) == ""
}

// Returns "(local)" for local builds, otherwise
// "<version>[+<stage>] <commit> [<goos>/<goarch>]". The stage suffix is
// omitted for main.
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}

	s := Stage()
	if s == mainBranch {
		s = ""
	} else {
		s = "+" + s
	}

	return fmt.Sprintf("%s%s %s [%s]", Version(), s, GitCommit(), BuildTarget())
}

func orUndefined(s string) string {
	if s == "" {
		return defaultUndefined
	}
	return s
}
