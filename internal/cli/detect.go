package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cruciblehq/cruxpack/internal/platform"
	"github.com/cruciblehq/cruxpack/internal/publish"
)

// Represents the 'cruxpack detect' command.
type DetectCmd struct{}

// Executes the detect command.
func (c *DetectCmd) Run(ctx context.Context) error {
	cfg, err := RootCmd.loadConfig()
	if err != nil {
		return err
	}
	return printHost(os.Stdout, platform.Detect(), cfg.Product, cfg.Publish)
}

func printHost(w io.Writer, host platform.Host, product, publishDir string) error {
	_, err := fmt.Fprintf(w, "platform: %s\nos:       %s\narch:     %s\narchive:  %s\n",
		host.Label(),
		host.OS,
		host.Arch,
		filepath.Join(publishDir, publish.ArchiveName(product, host)),
	)
	return err
}
