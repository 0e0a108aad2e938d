package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/board"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/boardsync"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

func watchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the queue counters until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			// Set once Load returns; the poller goroutine starts after that.
			var session *boardsync.Session
			onChange := func(board.Board) {
				if session != nil {
					printCounts(out, session.Counts())
				}
			}

			e, err := openEnv(ctx, boardsync.WithOnChange(onChange))
			if err != nil {
				return err
			}
			defer e.Close()

			session = e.session

			every := interval
			if every <= 0 {
				every = e.cfg.Client.CountsPollInterval
			}

			printCounts(out, e.session.Counts())
			go e.session.RunCountsPoller(ctx, every)

			for {
				select {
				case <-ctx.Done():
					return nil
				case n := <-e.session.Notifications():
					fmt.Fprintln(cmd.ErrOrStderr(), urgentStyle.Render(n.Message))
				}
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "poll interval (default from config)")
	return cmd
}

func printCounts(w io.Writer, c domain.QueueCounts) {
	fmt.Fprintf(w, "%s  %s\n", time.Now().Format("15:04:05"), renderCounts(c))
}
