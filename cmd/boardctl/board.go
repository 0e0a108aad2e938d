package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func boardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the board with the saved filter and order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			fmt.Fprintln(cmd.OutOrStdout(), renderBoard(e.session))
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <plan>",
		Short: "Show the state transitions of a plan, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			p, err := resolvePlan(e.session, args[0])
			if err != nil {
				return err
			}

			items, err := e.api.History(cmd.Context(), p.ID, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(p.BusinessID+" "+p.Label))
			if len(items) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("no transitions"))
			}
			for _, t := range items {
				fmt.Fprintln(out, renderHistoryLine(t.FromState, t.ToState, t.Reason, t.ReopenSubtype,
					t.CreatedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of transitions")
	return cmd
}
