package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *cli) newScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <date>",
		Short: "List the games scheduled for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := c.container.Schedule.ListGames(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(games) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No games scheduled for this date.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tAWAY\tHOME\tSCORE")
			for _, game := range games {
				score := "-"
				if game.AwayTeamScore != nil && game.HomeTeamScore != nil {
					score = fmt.Sprintf("%d-%d", *game.AwayTeamScore, *game.HomeTeamScore)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", game.GameID, game.AwayTeam, game.HomeTeam, score)
			}
			return w.Flush()
		},
	}
}
