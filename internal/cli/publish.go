package cli

import (
	"context"
	"log/slog"

	"github.com/cruciblehq/cruxpack/internal/config"
	"github.com/cruciblehq/cruxpack/internal/deps"
	"github.com/cruciblehq/cruxpack/internal/platform"
	"github.com/cruciblehq/cruxpack/internal/publish"
	"github.com/cruciblehq/cruxpack/internal/shell"
)

// Represents the 'cruxpack publish' command.
type PublishCmd struct {
	Product  string `help:"Override the product name used in the archive name." placeholder:"NAME"`
	SkipDeps bool   `help:"Skip native dependency installation on Linux."`
}

// Executes the publish command.
//
// The host is detected once and used for the whole run.
func (c *PublishCmd) Run(ctx context.Context) error {
	cfg, err := RootCmd.loadConfig()
	if err != nil {
		return err
	}
	c.apply(&cfg)

	host := platform.Detect()
	slog.Debug("detected host", "os", host.OS, "arch", host.Arch, "platform", host.Label())

	_, err = runPublish(ctx, host, shell.New(), cfg)
	return err
}

// Applies command-line overrides on top of the loaded configuration.
func (c *PublishCmd) apply(cfg *config.Config) {
	if c.Product != "" {
		cfg.Product = c.Product
	}
	if c.SkipDeps {
		cfg.SkipDeps = true
	}
}

// Runs one full packaging cycle: reset the publish directory, prepare
// dependencies, then build and archive.
func runPublish(ctx context.Context, host platform.Host, runner shell.Runner, cfg config.Config) (*publish.Result, error) {
	if err := publish.ResetDir(cfg.Publish); err != nil {
		return nil, err
	}

	if !cfg.SkipDeps {
		if err := deps.Prepare(ctx, host, runner, cfg.Packages); err != nil {
			return nil, err
		}
	}

	return publish.Pack(ctx, host, runner, publishOptions(cfg))
}

func publishOptions(cfg config.Config) publish.Options {
	return publish.Options{
		Command:        cfg.Command,
		WindowsCommand: cfg.WindowsCommand,
		Product:        cfg.Product,
		Dist:           cfg.Dist,
		Staging:        cfg.Staging,
		Publish:        cfg.Publish,
		Bundle:         cfg.Bundle,
	}
}
