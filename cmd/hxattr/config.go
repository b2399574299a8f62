package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hxattr/internal/config"
	"github.com/vango-dev/hxattr/internal/errors"
)

func configCmd() *cobra.Command {
	var (
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration serve would use, with defaults filled in.

Examples:
  hxattr config
  hxattr config --format=yaml
  hxattr config init hxattr.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			data, err := cfg.Marshal(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: the one in the working directory)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")

	cmd.AddCommand(configInitCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the default values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigFileName
			if len(args) == 1 {
				path = args[0]
			}
			if !force && fileExists(path) {
				return errors.New(errors.ErrConfigInvalid).
					WithDetail(path + " already exists.").
					WithSuggestion("Pass --force to overwrite it.")
			}
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
