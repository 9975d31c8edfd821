package deps

import (
	"context"
	"errors"
	"testing"

	"github.com/cruciblehq/cruxpack/internal/platform"
	"github.com/cruciblehq/cruxpack/internal/shell"
)

type fakeRunner struct {
	code     int
	err      error
	commands []string
}

func (f *fakeRunner) Run(_ context.Context, command string) (*shell.Result, error) {
	f.commands = append(f.commands, command)
	if f.err != nil {
		return nil, f.err
	}
	return &shell.Result{Command: command, ExitCode: f.code}, nil
}

func TestCommand(t *testing.T) {
	got := Command([]string{"a", "b"})
	want := "sudo apt update && sudo apt install a b"
	if got != want {
		t.Fatalf("Command() = %q, want %q", got, want)
	}
}

func TestCommandDefaults(t *testing.T) {
	got := Command(DefaultPackages)
	want := "sudo apt update && sudo apt install build-essential libasound2-dev libx11-dev " +
		"libxrandr-dev libxi-dev libgl1-mesa-dev libglu1-mesa-dev libxcursor-dev " +
		"libxinerama-dev libwayland-dev libxkbcommon-dev"
	if got != want {
		t.Fatalf("Command() = %q, want %q", got, want)
	}
}

func TestPrepareLinux(t *testing.T) {
	r := &fakeRunner{}
	if err := Prepare(context.Background(), platform.NewHost("Linux", "x86_64"), r, []string{"pkg"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.commands) != 1 || r.commands[0] != Command([]string{"pkg"}) {
		t.Fatalf("commands = %q, want one apt command", r.commands)
	}
}

func TestPrepareLinuxFailure(t *testing.T) {
	r := &fakeRunner{code: 100}
	err := Prepare(context.Background(), platform.NewHost("Linux", "x86_64"), r, DefaultPackages)
	if !errors.Is(err, ErrInstallFailed) {
		t.Fatalf("err = %v, want ErrInstallFailed", err)
	}
}

func TestPrepareStartFailure(t *testing.T) {
	r := &fakeRunner{err: shell.ErrStart}
	err := Prepare(context.Background(), platform.NewHost("Linux", "x86_64"), r, DefaultPackages)
	if !errors.Is(err, ErrInstallFailed) || !errors.Is(err, shell.ErrStart) {
		t.Fatalf("err = %v, want ErrInstallFailed wrapping ErrStart", err)
	}
}

func TestPrepareNoOp(t *testing.T) {
	for _, osName := range []string{"Darwin", "Windows", "FreeBSD"} {
		t.Run(osName, func(t *testing.T) {
			r := &fakeRunner{code: 1}
			if err := Prepare(context.Background(), platform.NewHost(osName, "arm64"), r, DefaultPackages); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(r.commands) != 0 {
				t.Fatalf("commands = %q, want none", r.commands)
			}
		})
	}
}
