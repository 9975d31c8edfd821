//go:build !windows

package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	sh := New()
	sh.Dir = t.TempDir()
	sh.Stdin = nil
	sh.Stdout = &out
	sh.Stderr = &out
	return sh, &out
}

func TestRunSuccess(t *testing.T) {
	sh, out := newTestShell(t)

	res, err := sh.Run(context.Background(), "echo hello && mkdir dist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success() {
		t.Fatalf("ExitCode = %d, want 0", res.ExitCode)
	}
	if out.String() != "hello\n" {
		t.Fatalf("output = %q, want %q", out.String(), "hello\n")
	}
	if _, err := os.Stat(filepath.Join(sh.Dir, "dist")); err != nil {
		t.Fatalf("command did not run in Dir: %v", err)
	}
}

func TestRunExitCode(t *testing.T) {
	sh, _ := newTestShell(t)

	res, err := sh.Run(context.Background(), "exit 3")
	if err != nil {
		t.Fatalf("non-zero exit returned error: %v", err)
	}
	if res.Success() || res.ExitCode != 3 {
		t.Fatalf("ExitCode = %d, want 3", res.ExitCode)
	}
}

func TestRunShortCircuit(t *testing.T) {
	sh, out := newTestShell(t)

	res, err := sh.Run(context.Background(), "false && echo unreachable")
	if err != nil {
		t.Fatal(err)
	}
	if res.Success() {
		t.Fatal("expected failure")
	}
	if out.Len() != 0 {
		t.Fatalf("second command ran: %q", out.String())
	}
}

func TestRunEnv(t *testing.T) {
	sh, out := newTestShell(t)
	sh.Env = []string{"CRUXPACK_TEST_VALUE=42"}

	if _, err := sh.Run(context.Background(), `printf "$CRUXPACK_TEST_VALUE"`); err != nil {
		t.Fatal(err)
	}
	if out.String() != "42" {
		t.Fatalf("output = %q, want 42", out.String())
	}
}

func TestRunMissingInterpreter(t *testing.T) {
	sh, _ := newTestShell(t)
	sh.Path = filepath.Join(sh.Dir, "no-such-shell")

	_, err := sh.Run(context.Background(), "true")
	if !errors.Is(err, ErrStart) {
		t.Fatalf("err = %v, want ErrStart", err)
	}
}

func TestRunCancelled(t *testing.T) {
	sh, _ := newTestShell(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := sh.Run(ctx, "sleep 5")
	if err == nil && res.Success() {
		t.Fatal("cancelled command reported success")
	}
}

func TestMergeEnv(t *testing.T) {
	tests := []struct {
		name      string
		base      []string
		overrides []string
		want      []string
	}{
		{
			name:      "override wins",
			base:      []string{"A=1", "B=2"},
			overrides: []string{"A=override"},
			want:      []string{"A=override", "B=2"},
		},
		{
			name:      "both empty",
			base:      nil,
			overrides: nil,
			want:      []string{},
		},
		{
			name:      "value with equals sign",
			base:      []string{"CMD=foo=bar"},
			overrides: nil,
			want:      []string{"CMD=foo=bar"},
		},
		{
			name:      "malformed entries skipped",
			base:      []string{"NOEQUALS", "B=1"},
			overrides: []string{"ALSO_BAD", "A=2"},
			want:      []string{"A=2", "B=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeEnv(tt.base, tt.overrides)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mergeEnv() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResultSuccess(t *testing.T) {
	if !(&Result{}).Success() {
		t.Fatal("zero exit code should be success")
	}
	if (&Result{ExitCode: 1}).Success() {
		t.Fatal("exit code 1 should not be success")
	}
}
