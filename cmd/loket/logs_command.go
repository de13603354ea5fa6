package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loket/internal/ipc"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var follow bool
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show daemon log output",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.dialClient()
			if err != nil {
				return err
			}
			defer client.Close()

			stdout := cmd.OutOrStdout()
			offset := int64(-1)
			for {
				req := ipc.LogTailRequest{Offset: offset, Limit: lines, Follow: follow}
				if follow {
					req.WaitMillis = 1000
				}
				resp, err := client.LogTail(req)
				if err != nil {
					return err
				}
				for _, line := range resp.Lines {
					fmt.Fprintln(stdout, line)
				}
				offset = resp.Offset
				if !follow {
					return nil
				}
				select {
				case <-cmd.Context().Done():
					return nil
				default:
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep streaming new log lines")
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to show")
	return cmd
}
