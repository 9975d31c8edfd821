package internal

import (
	"log/slog"
	"strings"
	"testing"
)

func setVars(t *testing.T, v, s, c string) {
	t.Helper()
	oldV, oldS, oldC := version, stage, gitCommit
	version, stage, gitCommit = v, s, c
	t.Cleanup(func() { version, stage, gitCommit = oldV, oldS, oldC })
}

func TestVersionStringLocal(t *testing.T) {
	setVars(t, "1.0.0", "", "abc")
	if got := VersionString(); got != defaultLocalBuild {
		t.Fatalf("VersionString() = %q, want %q", got, defaultLocalBuild)
	}
}

func TestVersionStringMain(t *testing.T) {
	setVars(t, "V1.2.3", "main", "a1b2c3")
	got := VersionString()
	if !strings.HasPrefix(got, "1.2.3 a1b2c3 [") {
		t.Fatalf("VersionString() = %q, want 1.2.3 a1b2c3 [...]", got)
	}
	if !strings.HasSuffix(got, BuildTarget()+"]") {
		t.Fatalf("VersionString() = %q, missing build target", got)
	}
}

func TestVersionStringBranch(t *testing.T) {
	setVars(t, "1.2.3", "Staging", "a1b2c3")
	if got := VersionString(); !strings.HasPrefix(got, "1.2.3+staging a1b2c3") {
		t.Fatalf("VersionString() = %q, want 1.2.3+staging prefix", got)
	}
}

func TestUndefined(t *testing.T) {
	setVars(t, " ", "", "")
	if Version() != defaultUndefined || Stage() != defaultUndefined || GitCommit() != defaultUndefined {
		t.Fatalf("got %q %q %q, want all undefined", Version(), Stage(), GitCommit())
	}
}

func TestLogLevel(t *testing.T) {
	t.Cleanup(func() {
		SetQuiet(false)
		SetDebug(false)
	})

	SetQuiet(true)
	if LogLevel() != slog.LevelWarn {
		t.Fatalf("quiet: LogLevel() = %v, want WARN", LogLevel())
	}

	SetDebug(true)
	if LogLevel() != slog.LevelDebug {
		t.Fatalf("quiet+debug: LogLevel() = %v, want DEBUG", LogLevel())
	}
}
