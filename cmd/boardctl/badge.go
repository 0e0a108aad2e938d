package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func badgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badge <plan> <label>",
		Short: "Toggle a status badge on a plan",
		Long: `Toggle a status badge on a plan. The label may be given by id, by
name, or as Category/Label when the name is used in several categories.`,
		Args: cobra.ExactArgs(2),
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
			label, err := resolveLabel(e.session.Catalog(), args[1])
			if err != nil {
				return err
			}

			added, err := e.session.ToggleBadge(cmd.Context(), p.ID, label.ID)
			if err != nil {
				return err
			}
			e.session.Wait()
			if err := e.drainFailures(); err != nil {
				return err
			}

			verb := "removed from"
			if added {
				verb = "added to"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", label.Name, verb, p.BusinessID)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "catalog",
		Short: "List the status label catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			cat := e.session.Catalog()
			styles := newBadgeStyles(cat)
			out := cmd.OutOrStdout()
			for _, c := range cat.Categories {
				fmt.Fprintln(out, titleStyle.Render(c.Name))
				for _, l := range cat.Labels {
					if l.CategoryID != c.ID {
						continue
					}
					fmt.Fprintf(out, "  %s  %s\n", styles[l.ID].style.Render(l.Name), mutedStyle.Render(l.ID.String()))
				}
			}
			return nil
		},
	})

	return cmd
}
