package cli

import (
	"github.com/spf13/cobra"

	"github.com/pixelforge/qrcanvas/internal/server"
)

// serveCommand creates the serve command running the HTTP rendering service.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		Long: `Run the qrcanvas HTTP service.

The service renders QR codes at GET /v1/qr and lists encodable formats at
GET /v1/formats. Configuration is read from a TOML file; --addr overrides
the configured listen address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			store, err := cfg.NewCache(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			logger := loggerFromContext(cmd.Context())
			return server.New(cfg, logger, store).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
