package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"loket/internal/daemonrun"
	"loket/internal/ipc"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			client, err := ctx.dialClient()
			if err != nil {
				fmt.Fprintln(stdout, statusLabel("Daemon: not running", text.FgRed, colorize))
				if cfg := ctx.configValue(); cfg != nil {
					fmt.Fprintf(stdout, "Socket:   %s\n", cfg.SocketPath())
					fmt.Fprintf(stdout, "Database: %s\n", cfg.DatabasePath())
				}
				return nil
			}
			defer client.Close()

			status, err := client.Status()
			if err != nil {
				return err
			}

			fmt.Fprintln(stdout, statusLabel("Daemon: running", text.FgGreen, colorize))
			fmt.Fprintf(stdout, "PID:        %d\n", status.PID)
			fmt.Fprintf(stdout, "Started:    %s\n", status.StartedAt)
			fmt.Fprintf(stdout, "Uptime:     %s\n", (time.Duration(status.UptimeSecs) * time.Second).String())
			fmt.Fprintf(stdout, "Database:   %s\n", status.DatabasePath)
			fmt.Fprintf(stdout, "Store open: %v\n", status.StoreOpen)
			fmt.Fprintf(stdout, "Counters:   %v\n", status.Counters)
			return nil
		},
	}
}

func statusLabel(label string, color text.Color, colorize bool) string {
	if !colorize {
		return label
	}
	return color.Sprint(label)
}

func newStopCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the loket daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			err := ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Stop()
				if err != nil {
					return err
				}
				if resp.Stopping {
					fmt.Fprintln(stdout, "Stop request sent")
				} else {
					fmt.Fprintln(stdout, "Daemon did not acknowledge the stop request")
				}
				return nil
			})
			if err != nil {
				fmt.Fprintln(stdout, "Daemon is not running")
				return nil
			}
			return nil
		},
	}
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the daemon in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return daemonrun.Run(cmd.Context(), cfg, daemonrun.Options{LogLevel: logLevel})
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	return cmd
}

func newTestNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer session.Close()

			sent, message, err := session.Access.TestNotification(cmd.Context())
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()
			switch {
			case message != "":
				fmt.Fprintln(stdout, message)
			case sent:
				fmt.Fprintln(stdout, "Test notification sent")
			default:
				fmt.Fprintln(stdout, "Notification not sent")
			}
			return nil
		},
	}
}
