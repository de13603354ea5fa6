package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"loket/internal/ipc"
)

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var category string
	var printAfter bool

	cmd := &cobra.Command{
		Use:   "create <counter>",
		Short: "Issue the next ticket for a counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer session.Close()

			counter := strings.ToUpper(strings.TrimSpace(args[0]))
			created, err := session.Access.Create(cmd.Context(), counter, category)
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "Created ticket %s (counter %s, category %s)\n",
				created.Code, created.Counter, created.Category)

			if !printAfter {
				return nil
			}
			message, err := session.Access.Print(cmd.Context(), ipc.PrintTicketRequest{
				Code:      created.Code,
				Counter:   created.Counter,
				Category:  created.Category,
				CreatedAt: created.CreatedAt,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, message)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Patient category printed on the receipt")
	cmd.Flags().BoolVar(&printAfter, "print", false, "Print the receipt after issuing")
	return cmd
}

func newPrintCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "print <code>",
		Short: "Reprint the receipt for an existing ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer session.Close()

			code := strings.ToUpper(strings.TrimSpace(args[0]))
			found, err := session.Access.Describe(cmd.Context(), code)
			if err != nil {
				return err
			}
			if found == nil {
				return fmt.Errorf("ticket %s not found among today's tickets", code)
			}

			message, err := session.Access.Print(cmd.Context(), ipc.PrintTicketRequest{
				Code:      found.Code,
				Counter:   found.Counter,
				Category:  found.Category,
				CreatedAt: found.CreatedAt,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}

func newTicketsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tickets",
		Short: "List today's tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer session.Close()

			tickets, err := session.Access.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(tickets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tickets issued today")
				return nil
			}

			rows := make([][]string, 0, len(tickets))
			for _, t := range tickets {
				rows = append(rows, []string{
					t.Code,
					t.Counter,
					t.Category,
					t.Status,
					t.CreatedAt,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Code", "Counter", "Category", "Status", "Created At"},
				rows,
				nil,
			))
			return nil
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show one ticket by code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer session.Close()

			code := strings.ToUpper(strings.TrimSpace(args[0]))
			found, err := session.Access.Describe(cmd.Context(), code)
			if err != nil {
				return err
			}
			if found == nil {
				return fmt.Errorf("ticket %s not found", code)
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "Code:       %s\n", found.Code)
			fmt.Fprintf(stdout, "Counter:    %s\n", found.Counter)
			fmt.Fprintf(stdout, "Sequence:   %d\n", found.SequenceNumber)
			fmt.Fprintf(stdout, "Category:   %s\n", found.Category)
			fmt.Fprintf(stdout, "Status:     %s\n", found.Status)
			fmt.Fprintf(stdout, "Created At: %s\n", found.CreatedAt)
			fmt.Fprintf(stdout, "Updated At: %s\n", found.UpdatedAt)
			return nil
		},
	}
}
