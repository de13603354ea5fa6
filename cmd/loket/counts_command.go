package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"loket/internal/ticket"
)

func newCountsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Show today's issued count per counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer session.Close()

			counts, err := session.Access.Counts(cmd.Context())
			if err != nil {
				return err
			}

			counters := make([]string, 0, len(counts))
			for counter := range counts {
				counters = append(counters, counter)
			}
			sort.Strings(counters)

			rows := make([][]string, 0, len(counters))
			for _, counter := range counters {
				count := counts[counter]
				rows = append(rows, []string{
					counter,
					fmt.Sprintf("%d", count),
					ticket.FormatCode(counter, count+1),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Counter", "Issued Today", "Next Code"},
				rows,
				[]columnAlignment{alignColumnLeft, alignColumnRight, alignColumnLeft},
			))
			return nil
		},
	}
}
