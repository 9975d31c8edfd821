package deps

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cruciblehq/cruxpack/internal/platform"
	"github.com/cruciblehq/cruxpack/internal/shell"
)

// Native development packages required to build on Debian-based hosts:
// toolchain, ALSA, X11 and its input/cursor extensions, OpenGL/GLU, Wayland,
// and xkbcommon.
var DefaultPackages = []string{
	"build-essential",
	"libasound2-dev",
	"libx11-dev",
	"libxrandr-dev",
	"libxi-dev",
	"libgl1-mesa-dev",
	"libglu1-mesa-dev",
	"libxcursor-dev",
	"libxinerama-dev",
	"libwayland-dev",
	"libxkbcommon-dev",
}

// Returns the apt command line that installs packages.
func Command(packages []string) string {
	install := "sudo apt install"
	if len(packages) > 0 {
		install += " " + strings.Join(packages, " ")
	}
	return "sudo apt update && " + install
}

// Installs packages on Linux hosts. A no-op on every other platform.
//
// Returns [ErrInstallFailed] if the apt command exits non-zero.
func Prepare(ctx context.Context, host platform.Host, runner shell.Runner, packages []string) error {
	switch host.Platform {
	case platform.Linux:
	case platform.MacOS, platform.Windows, platform.Other:
		slog.Debug("skipping dependency installation", "platform", host.Label())
		return nil
	}

	slog.Info("installing dependencies", "packages", len(packages))

	res, err := runner.Run(ctx, Command(packages))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}
	if !res.Success() {
		return fmt.Errorf("%w: exit code %d", ErrInstallFailed, res.ExitCode)
	}
	return nil
}
