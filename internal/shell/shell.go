package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// Runs a command string and reports how it exited.
type Runner interface {
	Run(ctx context.Context, command string) (*Result, error)
}

// Outcome of a single command.
type Result struct {
	Command  string // Command string as passed to the interpreter.
	ExitCode int    // Exit status of the interpreter process.
}

// Returns true if the command exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runs commands through a command interpreter.
//
// The zero value is not usable; create one with [New].
type Shell struct {
	Path   string    // Interpreter executable.
	Flag   string    // Flag that makes the interpreter run its next argument.
	Dir    string    // Working directory. Empty uses the current directory.
	Env    []string  // "KEY=value" overrides on top of the process environment.
	Stdin  io.Reader // Nil leaves stdin connected to the null device.
	Stdout io.Writer // Nil discards output.
	Stderr io.Writer // Nil discards output.
}

// Creates a [Shell] for the host interpreter wired to the process's
// standard streams.
func New() *Shell {
	path, flag := interpreter()
	return &Shell{
		Path:   path,
		Flag:   flag,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Runs command and waits for it to exit.
//
// Blocks until the interpreter exits or ctx is cancelled, in which case the
// process is killed and its exit status is reported as usual.
func (s *Shell) Run(ctx context.Context, command string) (*Result, error) {
	cmd := exec.CommandContext(ctx, s.Path, s.Flag, command)
	configure(cmd, s.Path, s.Flag, command)
	cmd.Dir = s.Dir
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if len(s.Env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), s.Env)
	}

	slog.Debug("exec", "shell", s.Path, "command", command, "dir", s.Dir)

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return &Result{Command: command}, nil
	case errors.As(err, &exitErr):
		return &Result{Command: command, ExitCode: exitCode(exitErr)}, nil
	default:
		return nil, fmt.Errorf("%w: %q: %w", ErrStart, command, err)
	}
}

// Returns the exit status carried by err.
//
// Processes killed by a signal report -1 from the runtime; those are mapped
// to 1 so that a killed command still reads as a failure.
func exitCode(err *exec.ExitError) int {
	if code := err.ExitCode(); code > 0 {
		return code
	}
	return 1
}

// Merges override env vars on top of a base env slice.
//
// Later entries win. Entries without "=" are dropped. The result is sorted by
// key.
func mergeEnv(base, overrides []string) []string {
	merged := make(map[string]string, len(base)+len(overrides))
	for _, entry := range append(base[:len(base):len(base)], overrides...) {
		if k, v, ok := strings.Cut(entry, "="); ok {
			merged[k] = v
		}
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+merged[k])
	}
	return result
}
