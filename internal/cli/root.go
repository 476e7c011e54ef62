package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-ascii/internal/config"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "unknown" // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2025-12-20T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOptions holds the global flags and the settings they resolve to.
type rootOptions struct {
	configPath string
	verbose    bool

	// cfg is populated by the root command before any subcommand runs.
	cfg config.Config
}

// Execute runs the image-ascii CLI and returns an error if any command fails.
// The error has already been printed to stderr when Execute returns.
//
// Example:
//
//	func main() {
//	    cli.SetVersion("v1.0.0", "abc123", "2025-12-20")
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		printError(root.ErrOrStderr(), "%v", err)
		return err
	}
	return nil
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "image-ascii",
		Short: "image-ascii turns images into two-tone ASCII art",
		Long: `image-ascii downsamples an image to a grid of rows and columns, renders every
cell as '#' (dark) or '.' (light), and run-length encodes each row.

It runs as a one-shot converter, an HTTP API or an MCP stdio server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			level := cfg.Level()
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			if opts.configPath != "" {
				logger.Debug("loaded config", "path", opts.configPath)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("image-ascii %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newConvertCmd(opts))
	root.AddCommand(newDecodeCmd(opts))
	root.AddCommand(newInfoCmd())
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newMCPCmd(opts))

	return root
}
