package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/usecase"
)

func (c *cli) newBackfillCmd() *cobra.Command {
	var (
		artifact string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "backfill <date>",
		Short: "Build one missing artifact for every game of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.container.Backfill.Run(cmd.Context(), usecase.BackfillInput{
				Date:       args[0],
				Artifact:   artifact,
				MaxWorkers: workers,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s: %s for %s, %d games, %d ok, %d failed (%d workers)\n",
				result.RunID, result.Artifact, result.Date,
				result.GameCount, result.SuccessCount, result.FailedCount, result.WorkerCount)
			if len(result.Games) == 0 {
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "GAME\tMATCHUP\tSTATUS\tDURATION\tMESSAGE")
			for _, game := range result.Games {
				fmt.Fprintf(w, "%d\t%s @ %s\t%s\t%dms\t%s\n",
					game.GameID, game.Away, game.Home, game.Status, game.DurationMs, game.Message)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&artifact, "artifact", "", "artifact to build: raw_pbp, raw_story, events, summary_stats or summary_ai")
	cmd.Flags().IntVar(&workers, "workers", 0, "maximum concurrent games (defaults to BACKFILL_WORKERS)")
	_ = cmd.MarkFlagRequired("artifact")
	return cmd
}
