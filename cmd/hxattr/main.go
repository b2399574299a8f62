package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hxattr/internal/config"
	"github.com/vango-dev/hxattr/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╻ ╻╻ ╻┏━┓╺┳╸╺┳╸┏━┓
  ┣━┫┏╋┛┣━┫ ┃  ┃ ┣┳┛
  ╹ ╹╹ ╹╹ ╹ ╹  ╹ ╹┗╸
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hxattr",
		Short: "Build and inspect htmx attributes",
		Long: `hxattr builds htmx attributes the way the hx package does.

Repeated attributes are merged instead of overwritten:

  • hx-trigger, hx-select-oob, hx-disabled-elt, hx-ext and hx-params
    are joined with ", "
  • hx-inherit and hx-disinherit are joined with " "
  • everything else keeps the last value`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		mergeCmd(),
		classesCmd(),
		serveCmd(),
		configCmd(),
		versionCmd(),
	)
	return rootCmd
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// newLogger builds the slog logger described by cfg.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadConfig reads path, or the config file in the working directory when
// path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(".")
}
