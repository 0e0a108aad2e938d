package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/boardsync"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

func moveCmd() *cobra.Command {
	var (
		reason  string
		subtype string
	)

	cmd := &cobra.Command{
		Use:   "move <plan> <state>",
		Short: "Move a plan to another column",
		Long: `Move a plan to another column. Pausing, cancelling and reopening
need a reason; a reopen also needs a subtype (correction or remake). Missing
values are prompted for.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := parseState(args[1])
			if err != nil {
				return err
			}
			sub, err := parseSubtype(subtype)
			if err != nil {
				return err
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

			m, err := e.session.Move(p.ID, to)
			if err != nil {
				return err
			}

			if m.State() == boardsync.MoveAwaitingReason {
				prompt := &prompter{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.ErrOrStderr()}
				if err := confirmMove(m, prompt, reason, sub); err != nil {
					m.Cancel()
					return err
				}
			}

			out := cmd.OutOrStdout()
			if err := m.Wait(cmd.Context()); err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				fmt.Fprintf(out, "%s stays in %s: %v\n", p.BusinessID, m.From, err)
				return err
			}

			fmt.Fprintf(out, "%s: %s → %s\n", p.BusinessID, m.From, m.To)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "reason for a guarded move")
	cmd.Flags().StringVar(&subtype, "subtype", "", "reopen subtype: correction or remake")
	return cmd
}

// guardedMove is the part of boardsync.Move that confirmMove drives.
type guardedMove interface {
	Confirm(reason string, subtype *domain.ReopenSubtype) error
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirmMove fills in a missing reason or subtype from the prompt and
// confirms the move. The move is confirmed exactly once.
func confirmMove(m *boardsync.Move, p *prompter, reason string, sub *domain.ReopenSubtype) error {
	return confirmWith(m, m.From, m.To, p, reason, sub)
}

func confirmWith(m guardedMove, from, to domain.PlanState, p *prompter, reason string, sub *domain.ReopenSubtype) error {
	if strings.TrimSpace(reason) == "" {
		answer, err := p.ask(fmt.Sprintf("Reason for %s → %s: ", from, to))
		if err != nil {
			return err
		}
		reason = answer
	}

	if sub == nil && domain.RequiresReopenSubtype(from, to) {
		answer, err := p.ask("Reopen subtype (correction/remake): ")
		if err != nil {
			return err
		}
		parsed, err := parseSubtype(answer)
		if err != nil {
			return err
		}
		if parsed == nil {
			return domain.NewValidationError("subtype", "required")
		}
		sub = parsed
	}

	return m.Confirm(reason, sub)
}
