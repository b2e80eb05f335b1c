package app

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pgen-dev/pgen/internal/db"
	"github.com/pgen-dev/pgen/internal/db/controller/history"
)

const defaultHistoryLimit = 20

func newHistoryCmd(s *state) *cobra.Command {
	var (
		limit int
		purge bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or purge recorded generations",
		Long: `history lists the most recent generations recorded with --history.
Only metadata is stored: length, count, charset size, entropy and sinks.
Passwords are never written to the history database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := db.Open(&s.cfg)
			if err != nil {
				return err
			}

			defer func() {
				if cerr := db.Close(conn); cerr != nil {
					log.Warn().Err(cerr).Msg("failed to close history")
				}
			}()

			out := cmd.OutOrStdout()

			if purge {
				n, err := history.Purge(conn)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%d history entries deleted\n", n)

				return nil
			}

			rows, err := history.List(conn, limit)
			if err != nil {
				return errors.Wrap(err, "failed to list history")
			}

			if len(rows) == 0 {
				fmt.Fprintln(out, "No history recorded")
				return nil
			}

			for _, r := range rows {
				fmt.Fprintf(out, "%s  length=%d count=%d charset=%d entropy=%.2f no-repeat=%t algorithm=%s sinks=%s\n",
					r.CreatedAt.UTC().Format(time.RFC3339), r.Length, r.Count, r.CharsetSize,
					r.EntropyBits, r.NoRepeat, r.Algorithm, r.Sinks)
			}

			total, err := history.Count(conn)
			if err != nil {
				return errors.Wrap(err, "failed to count history")
			}

			if total > int64(len(rows)) {
				fmt.Fprintf(out, "Showing %d of %d entries\n", len(rows), total)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "maximum number of entries to list")
	cmd.Flags().BoolVar(&purge, "purge", false, "delete all entries")

	return cmd
}
