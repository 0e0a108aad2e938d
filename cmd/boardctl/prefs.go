package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the saved board layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(e.session.Preferences())
		},
	}

	cmd.AddCommand(prefsFilterCmd(), prefsModulesCmd(), prefsReorderCmd(), prefsResetCmd())
	return cmd
}

func prefsFilterCmd() *cobra.Command {
	var (
		search, clinic, doctor, workType string
		urgent                           bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Replace the board filter; no flags clears it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := domain.BoardFilter{Search: search, UrgentOnly: urgent}
			var err error
			if f.ClinicID, err = optionalUUID("clinic", clinic); err != nil {
				return err
			}
			if f.DoctorID, err = optionalUUID("doctor", doctor); err != nil {
				return err
			}
			if f.WorkTypeID, err = optionalUUID("work-type", workType); err != nil {
				return err
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.session.SetFilter(cmd.Context(), f); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderBoard(e.session))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "free-text search over id, label, patient and clinic")
	cmd.Flags().StringVar(&clinic, "clinic", "", "clinic id")
	cmd.Flags().StringVar(&doctor, "doctor", "", "doctor id")
	cmd.Flags().StringVar(&workType, "work-type", "", "work type id")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "urgent plans only")
	return cmd
}

func prefsModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules <state>...",
		Short: "Set the column order; unlisted columns follow in default order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := make([]string, len(args))
			for i, a := range args {
				s, err := parseState(a)
				if err != nil {
					return err
				}
				order[i] = s.String()
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			return e.session.SetModuleOrder(cmd.Context(), order)
		},
	}
}

func prefsReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <plan> <index>",
		Short: "Pin a plan at a position within its column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil || index < 0 {
				return domain.NewValidationError("index", "must be a non-negative integer")
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			p, err := resolvePlan(e.session, args[0])
			if err != nil {
				return err
			}
			return e.session.Reorder(cmd.Context(), p.ID, index)
		},
	}
}

func prefsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved filter, column order and manual order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			return e.session.ResetPreferences(cmd.Context())
		},
	}
}

func optionalUUID(field, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "invalid id")
	}
	return &id, nil
}
