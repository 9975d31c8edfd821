// Package shell runs external commands through the host's command
// interpreter.
//
// A command string is handed to the interpreter as a whole ("/bin/sh -c" on
// Unix, "cmd /C" on Windows), so operators such as "&&" behave exactly as
// they would when typed at a prompt. Each run yields a [Result] holding the
// exit status. A non-zero status is not an error: callers decide how to
// treat it. Errors are reserved for commands that could not be run at all.
//
// Example usage:
//
//	sh := shell.New()
//	res, err := sh.Run(ctx, "make release")
//	if err != nil {
//	    return err
//	}
//	if !res.Success() {
//	    return fmt.Errorf("release failed with exit code %d", res.ExitCode)
//	}
package shell
