package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/cruxpack/internal"
	"github.com/cruciblehq/cruxpack/internal/config"
	"github.com/cruciblehq/cruxpack/internal/paths"
)

// Command tree and global flags.
type Root struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Include source locations in log output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Config  string     `short:"c" help:"Configuration file. Defaults to ./cruxpack.yaml, then the user config directory." placeholder:"PATH" type:"path"`
	Publish PublishCmd `cmd:"" default:"withargs" help:"Build the release and archive it into the publish directory."`
	Detect  DetectCmd  `cmd:"" help:"Show the detected platform, architecture, and archive name."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Represents the root command for cruxpack.
var RootCmd Root

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Builds a release and packages it as {product}-{arch}-{platform}.zip."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	internal.SetDebug(RootCmd.Debug || internal.IsDebug())
	internal.SetQuiet(RootCmd.Quiet || internal.IsQuiet())
	internal.SetVerbose(RootCmd.Verbose || internal.IsVerbose())
	ConfigureLogger(os.Stderr)

	return kongCtx.Run()
}

// Loads the configuration named by the global flags.
func (r *Root) loadConfig() (config.Config, error) {
	return config.Load(paths.ConfigFile(r.Config))
}
