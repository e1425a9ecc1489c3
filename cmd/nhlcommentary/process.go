package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/usecase"
)

func (c *cli) newProcessCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "process <game-id>",
		Short: "Assemble a game's event stream and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := parseGameIDArg(args[0])
			if err != nil {
				return err
			}
			ctx := usecase.WithGameDate(cmd.Context(), date)
			events, err := c.container.Games.ProcessGame(ctx, gameID)
			if err != nil {
				return fmt.Errorf("process game %d: %w", gameID, err)
			}
			if len(events) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No events for game %d\n", gameID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d events for game %d\n", len(events), gameID)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "schedule date (YYYY-MM-DD) to mark in the date index")
	return cmd
}
