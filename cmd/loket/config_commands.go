package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"loket/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load("")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}

			stdout := cmd.OutOrStdout()
			if exists {
				fmt.Fprintf(stdout, "Configuration at %s is valid\n", path)
			} else {
				fmt.Fprintln(stdout, "No configuration file found, defaults are valid")
			}
			return nil
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "show",
		Short:       "Show the resolved configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load("")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			stdout := cmd.OutOrStdout()
			if exists {
				fmt.Fprintf(stdout, "Config file:     %s\n", path)
			} else {
				fmt.Fprintln(stdout, "Config file:     (defaults)")
			}
			fmt.Fprintf(stdout, "Data dir:        %s\n", cfg.Paths.DataDir)
			fmt.Fprintf(stdout, "Log dir:         %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(stdout, "Database:        %s\n", cfg.DatabasePath())
			fmt.Fprintf(stdout, "Socket:          %s\n", cfg.SocketPath())
			fmt.Fprintf(stdout, "Counters:        %s\n", strings.Join(cfg.Tickets.Counters, ", "))
			fmt.Fprintf(stdout, "Retention days:  %d\n", cfg.Tickets.RetentionDays)
			fmt.Fprintf(stdout, "Receipt header:  %s\n", cfg.Receipt.Header)
			fmt.Fprintf(stdout, "Spooler names:   %s\n", strings.Join(cfg.Printer.SpoolerNames, ", "))
			fmt.Fprintf(stdout, "Serial patterns: %s\n", strings.Join(cfg.Printer.SerialPatterns, ", "))
			fmt.Fprintf(stdout, "Baud rate:       %d\n", cfg.Printer.BaudRate)
			fmt.Fprintf(stdout, "Log level:       %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
	}
}
