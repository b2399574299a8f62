package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hxattr/pkg/preview"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		host       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start a server whose demo page is built from hx builders.

The page exercises clicks, live search, an item list with out of band
updates and a websocket chat, so merged attributes can be checked in a
browser with htmx loaded.

Examples:
  hxattr serve
  hxattr serve --port=8080
  hxattr serve --config=hxattr.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printBanner(out)
			success(out, "Preview at %s", cfg.URL())
			if path := cfg.Path(); path != "" {
				info(out, "config: %s", path)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := newLogger(cfg, cmd.ErrOrStderr())
			return preview.New(cfg, preview.WithLogger(logger)).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: hxattr.json, hxattr.yaml or hxattr.yml in the working directory)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}
