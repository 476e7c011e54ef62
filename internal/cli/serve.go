package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-ascii/internal/httpapi"
	"github.com/ironsheep/image-ascii/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve POST /api/ascii (and the older POST /api/test) until interrupted.

The listen address comes from --addr, IMAGE_ASCII_ADDR or the config file, in
that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			srv, err := httpapi.New(cfg, loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func newMCPCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP stdio server",
		Long: `Speak the Model Context Protocol over stdin and stdout. Configure this
command in an MCP client; logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := root.cfg.Conversion()
			if err != nil {
				return err
			}
			srv := server.New(conv, loggerFromContext(cmd.Context()), version)
			return srv.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
